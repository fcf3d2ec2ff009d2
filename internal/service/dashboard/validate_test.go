package dashboard

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, body string) any {
	t.Helper()
	raw, err := DecodePayload(strings.NewReader(body))
	require.NoError(t, err)
	return raw
}

func payloadDigits(p Payload) map[string]map[string]string {
	out := make(map[string]map[string]string, len(p))
	for metric, values := range p {
		out[metric] = digits(values)
	}
	return out
}

func TestValidatePayload_KnownKeysUnchanged(t *testing.T) {
	raw := decode(t, `{
		"RegularHC": {"inbound_amzn": 10, "inbound_temp": 5, "crets_temp": 6},
		"VTO": {"da_amzn": -3},
		"METPresent": {}
	}`)

	payload, err := ValidatePayload(raw)
	require.NoError(t, err)

	assert.Equal(t, map[string]map[string]string{
		"RegularHC":  {"inbound_amzn": "10", "inbound_temp": "5", "crets_temp": "6"},
		"VTO":        {"da_amzn": "-3"},
		"METPresent": {},
	}, payloadDigits(payload))
}

func TestValidatePayload_DropsUnknownKeys(t *testing.T) {
	raw := decode(t, `{
		"RegularHC": {"inbound_amzn": 1, "warehouse": 7},
		"Overtime": {"inbound_amzn": 2}
	}`)

	payload, err := ValidatePayload(raw)
	require.NoError(t, err)

	assert.Equal(t, map[string]map[string]string{"RegularHC": {"inbound_amzn": "1"}}, payloadDigits(payload))
	assert.NotContains(t, payload, "Overtime")
	assert.NotContains(t, payload["RegularHC"], "warehouse")
}

func TestValidatePayload_NonMappingEntryBecomesEmpty(t *testing.T) {
	raw := decode(t, `{"RegularHC": 12, "VTO": [1, 2], "VET": null}`)

	payload, err := ValidatePayload(raw)
	require.NoError(t, err)

	assert.Equal(t, map[string]map[string]string{"RegularHC": {}, "VTO": {}, "VET": {}}, payloadDigits(payload))
}

func TestValidatePayload_Coercion(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"numeric string", `"5"`, "5"},
		{"padded string", `" 7 "`, "7"},
		{"signed string", `"-4"`, "-4"},
		{"plus sign", `"+6"`, "6"},
		{"leading zero string", `"010"`, "10"},
		{"hex string", `"0x10"`, "0"},
		{"non numeric string", `"abc"`, "0"},
		{"decimal string", `"5.5"`, "0"},
		{"empty string", `""`, "0"},
		{"digit separators", `"1_000"`, "1000"},
		{"signed digit separators", `"-2_500_000"`, "-2500000"},
		{"double underscore", `"1__000"`, "0"},
		{"leading underscore", `"_1000"`, "0"},
		{"trailing underscore", `"1000_"`, "0"},
		{"underscore after sign", `"-_1"`, "0"},
		{"twenty digit string", `"99999999999999999999"`, "99999999999999999999"},
		{"null", `null`, "0"},
		{"list", `[1]`, "0"},
		{"object", `{"a": 1}`, "0"},
		{"true", `true`, "1"},
		{"false", `false`, "0"},
		{"float truncates", `7.9`, "7"},
		{"negative float truncates", `-7.9`, "-7"},
		{"exponent", `1e3`, "1000"},
		{"huge float", `1e20`, "100000000000000000000"},
		{"float out of range", `1e400`, "0"},
		{"max int64", `9223372036854775807`, "9223372036854775807"},
		{"past int64", `9223372036854775808`, "9223372036854775808"},
		{"big negative", `-123456789012345678901234567890`, "-123456789012345678901234567890"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := decode(t, `{"RegularHC": {"da_temp": `+tt.value+`}}`)

			payload, err := ValidatePayload(raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, payload["RegularHC"]["da_temp"].String())
		})
	}
}

func TestValidatePayload_GoValues(t *testing.T) {
	payload, err := ValidatePayload(map[string]any{
		"RegularHC": map[string]any{
			"inbound_amzn": 3,
			"inbound_temp": int64(4),
			"da_amzn":      uint8(2),
			"da_temp":      float32(1.5),
			"icqa_amzn":    struct{}{},
			"icqa_temp":    uint64(18446744073709551615),
			"crets_amzn":   big.NewInt(-12),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"inbound_amzn": "3",
		"inbound_temp": "4",
		"da_amzn":      "2",
		"da_temp":      "1",
		"icqa_amzn":    "0",
		"icqa_temp":    "18446744073709551615",
		"crets_amzn":   "-12",
	}, digits(payload["RegularHC"]))
}

func TestValidatePayload_InvalidShape(t *testing.T) {
	for _, body := range []string{`[]`, `"text"`, `42`, `null`, `true`} {
		t.Run(body, func(t *testing.T) {
			payload, err := ValidatePayload(decode(t, body))
			assert.ErrorIs(t, err, ErrInvalidPayloadShape)
			assert.Nil(t, payload)
		})
	}
}

func TestValidatePayload_DoesNotMutateInput(t *testing.T) {
	inner := map[string]any{"inbound_amzn": "5", "bogus": 1}
	raw := map[string]any{"RegularHC": inner, "Bogus": 1}

	_, err := ValidatePayload(raw)
	require.NoError(t, err)

	assert.Equal(t, "5", inner["inbound_amzn"])
	assert.Contains(t, inner, "bogus")
	assert.Contains(t, raw, "Bogus")
}

func TestDecodePayload_Errors(t *testing.T) {
	_, err := DecodePayload(strings.NewReader("   "))
	assert.ErrorIs(t, err, ErrEmptyBody)

	_, err = DecodePayload(strings.NewReader(`{`))
	assert.Error(t, err)

	_, err = DecodePayload(strings.NewReader(`{} {}`))
	assert.Error(t, err)
}

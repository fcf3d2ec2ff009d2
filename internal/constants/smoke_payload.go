package constants

// SmokePayload is the body used by GET /api/generate-dashboard/test.
// A fresh map is returned on every call so callers may not alter the original.
func SmokePayload() map[string]any {
	return map[string]any{
		"RegularHC": map[string]any{
			InboundAmzn: 10,
			InboundTemp: 5,
			DAAmzn:      8,
			DATemp:      3,
			ICQAAmzn:    4,
			ICQATemp:    1,
			CretsAmzn:   9,
			CretsTemp:   6,
		},
		"RegularExpected": map[string]any{
			InboundAmzn: 9,
			InboundTemp: 4,
			DAAmzn:      7,
			ICQAAmzn:    3,
			CretsAmzn:   8,
		},
		"RegularPresent": map[string]any{
			InboundAmzn: "8",
			DAAmzn:      6,
			CretsTemp:   2,
		},
		"VTO": map[string]any{
			InboundTemp: 2,
			DATemp:      1,
		},
		"METExpected": map[string]any{
			InboundAmzn: 3,
			ICQAAmzn:    2,
		},
		"METPresent": map[string]any{
			InboundAmzn: 1,
		},
	}
}

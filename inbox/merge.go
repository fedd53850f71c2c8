package inbox

import "stytchup/models"

// MergeMessages appends live pushed messages to the fetched history in
// arrival order. A live message whose id already appeared (the echo of a
// message the history fetch also returned) is dropped; nothing is ever
// reordered by timestamp.
func MergeMessages(history, live []models.Message) []models.Message {
	out := make([]models.Message, 0, len(history)+len(live))
	seen := make(map[string]bool, len(history)+len(live))

	for _, m := range history {
		if m.ID != "" && seen[m.ID] {
			continue
		}
		seen[m.ID] = true
		out = append(out, m)
	}
	for _, m := range live {
		if m.ID != "" && seen[m.ID] {
			continue
		}
		seen[m.ID] = true
		out = append(out, m)
	}
	return out
}

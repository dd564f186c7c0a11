package appointment

import "sort"

// BucketBySlot groups appointments by (consultant, hour-slot) key for O(1)
// lookup while rendering the grid. Within a bucket, entries are sorted by
// start time ascending; ties keep input order. Invalid windows never reach
// this point, so every appointment lands in exactly one bucket.
func BucketBySlot(appts []Appointment) map[string][]Appointment {
	buckets := make(map[string][]Appointment)
	for _, a := range appts {
		if !a.Window.IsValid() {
			continue
		}
		key := a.BucketKey()
		buckets[key] = append(buckets[key], a)
	}
	for key := range buckets {
		b := buckets[key]
		sort.SliceStable(b, func(i, j int) bool {
			return b[i].Window.Start < b[j].Window.Start
		})
	}
	return buckets
}

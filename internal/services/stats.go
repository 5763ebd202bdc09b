package services

import (
	"github.com/pkg/errors"

	"emogo-backend/internal/models"
)

// scoreDistribution counts records per score bucket 1..5. Scores outside the
// expected domain are left out of the buckets but still count toward totals
// and means.
func scoreDistribution(scores []int) map[int]int {
	dist := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	for _, score := range scores {
		if score >= 1 && score <= 5 {
			dist[score]++
		}
	}
	return dist
}

// Summary recomputes the aggregate over the full record set. It returns
// (nil, nil) when there are no records, so callers can report the distinct
// empty shape instead of a zero summary.
func (s *RecordService) Summary() (*models.StatsSummary, error) {
	records, err := s.Repo.ListRecords()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load records for stats")
	}
	if len(records) == 0 {
		return nil, nil
	}

	moods := make([]int, len(records))
	stress := make([]int, len(records))
	var moodSum, stressSum int
	first, latest := records[0].Timestamp, records[0].Timestamp

	for i, r := range records {
		moods[i] = r.MoodScore
		stress[i] = r.StressScore
		moodSum += r.MoodScore
		stressSum += r.StressScore

		// Timestamps are compared lexically, consistent with the filters.
		if r.Timestamp < first {
			first = r.Timestamp
		}
		if r.Timestamp > latest {
			latest = r.Timestamp
		}
	}

	total := len(records)
	return &models.StatsSummary{
		TotalRecords:       total,
		AvgMoodScore:       float64(moodSum) / float64(total),
		AvgStressScore:     float64(stressSum) / float64(total),
		MoodDistribution:   scoreDistribution(moods),
		StressDistribution: scoreDistribution(stress),
		FirstRecordAt:      first,
		LatestRecordAt:     latest,
	}, nil
}

//go:build integration

package testutils

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"

	rounddomain "github.com/Black-And-White-Club/golf-tracker/app/modules/round/domain"
)

// TestDataGenerator builds players and rounds for integration tests.
type TestDataGenerator struct {
	faker *gofakeit.Faker
	seed  int64
}

// NewTestDataGenerator creates a generator; pass a seed for repeatable data.
func NewTestDataGenerator(seed ...int64) *TestDataGenerator {
	var s int64
	if len(seed) > 0 {
		s = seed[0]
	} else {
		s = time.Now().UnixNano()
	}
	return &TestDataGenerator{faker: gofakeit.New(uint64(s)), seed: s}
}

// Seed reports the seed, for reproducing a failure.
func (g *TestDataGenerator) Seed() int64 { return g.seed }

// PlayerNames returns n distinct first names.
func (g *TestDataGenerator) PlayerNames(n int) []string {
	seen := make(map[string]bool, n)
	names := make([]string, 0, n)
	for len(names) < n {
		name := g.faker.FirstName()
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

// CourseName returns a plausible course name.
func (g *TestDataGenerator) CourseName() string {
	return g.faker.LastName() + " " + g.faker.RandomString([]string{"Links", "Golf Club", "Park", "Downs"})
}

// HandicapIndex returns an index between 0 and 36 with one decimal.
func (g *TestDataGenerator) HandicapIndex() float64 {
	return float64(g.faker.IntRange(0, 360)) / 10
}

// Draft returns a filled-in round for players on course. Every hole is par
// 4 and every stroke lies between 3 and 8.
func (g *TestDataGenerator) Draft(course string, holeCount int, players []string) *rounddomain.Draft {
	d := rounddomain.NewDraft(rounddomain.CourseInput{
		Name:         course,
		Area:         g.faker.City(),
		HoleCount:    holeCount,
		CourseRating: float64(holeCount * 4),
		Slope:        g.faker.IntRange(100, 140),
	})
	if err := d.Generate(players); err != nil {
		panic(err)
	}
	for _, p := range players {
		for h := range holeCount {
			if err := d.SetStroke(p, h, g.faker.IntRange(3, 8)); err != nil {
				panic(err)
			}
		}
	}
	return d
}

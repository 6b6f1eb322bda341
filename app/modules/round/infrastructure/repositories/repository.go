package rounddb

import (
	"fmt"
	"slices"
	"time"

	rounddomain "github.com/Black-And-White-Club/golf-tracker/app/modules/round/domain"
)

// Repository is the ordered collection of saved rounds, keyed by id. It owns
// its records: everything passed in is copied and everything returned is a
// copy. It is not safe for concurrent use.
type Repository struct {
	rounds []rounddomain.RoundRecord
}

// NewRepository builds a repository from records in order. Records are
// normalized; an invalid record or a repeated id fails the whole load.
func NewRepository(records []rounddomain.RoundRecord) (*Repository, error) {
	repo := &Repository{rounds: make([]rounddomain.RoundRecord, 0, len(records))}
	for _, r := range records {
		if err := repo.Insert(r); err != nil {
			return nil, err
		}
	}
	return repo, nil
}

func (repo *Repository) index(id int64) int {
	return slices.IndexFunc(repo.rounds, func(r rounddomain.RoundRecord) bool { return r.ID == id })
}

// prepare validates before Normalize so an out-of-range hole count is
// rejected before anything is sized by it.
func prepare(r rounddomain.RoundRecord) (rounddomain.RoundRecord, error) {
	if err := r.Validate(); err != nil {
		return rounddomain.RoundRecord{}, err
	}
	r = r.Clone()
	r.Normalize()
	if err := r.Validate(); err != nil {
		return rounddomain.RoundRecord{}, err
	}
	return r, nil
}

// Save replaces the record with the same id in place, or appends it.
func (repo *Repository) Save(r rounddomain.RoundRecord) (rounddomain.RoundRecord, error) {
	r, err := prepare(r)
	if err != nil {
		return rounddomain.RoundRecord{}, err
	}
	if i := repo.index(r.ID); i >= 0 {
		repo.rounds[i] = r
	} else {
		repo.rounds = append(repo.rounds, r)
	}
	return r.Clone(), nil
}

// Insert appends a record and fails if the id is already taken.
func (repo *Repository) Insert(r rounddomain.RoundRecord) error {
	r, err := prepare(r)
	if err != nil {
		return err
	}
	if repo.index(r.ID) >= 0 {
		return fmt.Errorf("%w: %d", ErrDuplicateID, r.ID)
	}
	repo.rounds = append(repo.rounds, r)
	return nil
}

// Delete removes the record with the given id. It reports whether one existed.
func (repo *Repository) Delete(id int64) bool {
	i := repo.index(id)
	if i < 0 {
		return false
	}
	repo.rounds = slices.Delete(repo.rounds, i, i+1)
	return true
}

func (repo *Repository) FindByID(id int64) (rounddomain.RoundRecord, error) {
	i := repo.index(id)
	if i < 0 {
		return rounddomain.RoundRecord{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return repo.rounds[i].Clone(), nil
}

// Filter returns matching records in insertion order.
func (repo *Repository) Filter(f Filter) []rounddomain.RoundRecord {
	out := make([]rounddomain.RoundRecord, 0)
	for _, r := range repo.rounds {
		if f.Matches(r) {
			out = append(out, r.Clone())
		}
	}
	return out
}

// History returns matching records newest first. Records with equal
// timestamps keep their insertion order.
func (repo *Repository) History(f Filter) []rounddomain.RoundRecord {
	out := repo.Filter(f)
	slices.SortStableFunc(out, func(a, b rounddomain.RoundRecord) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	return out
}

// CoursesUsed returns the distinct non-empty course names in first-seen order.
func (repo *Repository) CoursesUsed() []string {
	seen := make(map[string]bool)
	courses := make([]string, 0)
	for _, r := range repo.rounds {
		if r.CourseName == "" || seen[r.CourseName] {
			continue
		}
		seen[r.CourseName] = true
		courses = append(courses, r.CourseName)
	}
	return courses
}

// SortedCourses returns CoursesUsed in byte order, for pickers.
func (repo *Repository) SortedCourses() []string {
	courses := repo.CoursesUsed()
	slices.Sort(courses)
	return courses
}

// All returns every record in insertion order.
func (repo *Repository) All() []rounddomain.RoundRecord {
	return repo.Filter(Filter{})
}

func (repo *Repository) Len() int {
	return len(repo.rounds)
}

// MaxID returns the largest stored id, or 0 when empty.
func (repo *Repository) MaxID() int64 {
	var id int64
	for _, r := range repo.rounds {
		id = max(id, r.ID)
	}
	return id
}

// PlayerNames returns every name that has a score sheet in any round, sorted.
func (repo *Repository) PlayerNames() []string {
	seen := make(map[string]bool)
	for _, r := range repo.rounds {
		for name := range r.Scores {
			seen[name] = true
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// RenamePlayer migrates oldName to newName in every record and returns the
// number of records changed.
func (repo *Repository) RenamePlayer(oldName, newName string) int {
	changed := 0
	for i := range repo.rounds {
		if repo.rounds[i].RenamePlayer(oldName, newName) {
			changed++
		}
	}
	return changed
}

// Replace swaps the whole collection. Nothing changes if any record is
// invalid or ids repeat.
func (repo *Repository) Replace(records []rounddomain.RoundRecord) error {
	next, err := NewRepository(records)
	if err != nil {
		return err
	}
	repo.rounds = next.rounds
	return nil
}

// DifferentialsFor returns the player's stored differentials oldest first.
func (repo *Repository) DifferentialsFor(player string) []float64 {
	type dated struct {
		at   time.Time
		diff float64
	}
	found := make([]dated, 0)
	for _, r := range repo.rounds {
		if d, ok := r.Differentials[player]; ok {
			found = append(found, dated{at: r.Timestamp, diff: d})
		}
	}
	slices.SortStableFunc(found, func(a, b dated) int {
		return a.at.Compare(b.at)
	})
	diffs := make([]float64, len(found))
	for i, f := range found {
		diffs[i] = f.diff
	}
	return diffs
}

func (repo *Repository) Clone() *Repository {
	out := &Repository{rounds: make([]rounddomain.RoundRecord, len(repo.rounds))}
	for i, r := range repo.rounds {
		out.rounds[i] = r.Clone()
	}
	return out
}

package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/plenum/internal/domain/model"
)

// unknownTypeOrder sorts awards whose type was deleted after everything else.
const unknownTypeOrder = 999

// MemStore implements Store with in-memory ordered collections. A single
// RWMutex keeps individual operations safe for concurrent handlers; there is
// no cross-operation transaction, matching the single-admin operating model.
type MemStore struct {
	mu    sync.RWMutex
	now   func() time.Time
	newID func() string
	seed  bool

	portfolios   *collection[model.Portfolio]
	delegates    *collection[model.Delegate]
	secretariat  *collection[model.Secretariat]
	committees   *collection[model.Committee]
	execBoard    *collection[model.ExecutiveBoard]
	tasks        *collection[model.Task]
	logistics    *collection[model.Logistics]
	marketing    *collection[model.Marketing]
	sponsorships *collection[model.Sponsorship]
	updates      *collection[model.Update]
	evaluations  *collection[model.DelegateEvaluation]
	criteria     *collection[model.MarkingCriteria]
	awardTypes   *collection[model.AwardType]
	awards       *collection[model.DelegateAward]
	settings     *model.AppSettings
}

// NewMemStore creates an empty store. Use WithSeedData to load the default
// conference fixtures.
func NewMemStore(opts ...Option) *MemStore {
	s := &MemStore{
		now:          time.Now,
		newID:        uuid.NewString,
		portfolios:   newCollection[model.Portfolio](),
		delegates:    newCollection[model.Delegate](),
		secretariat:  newCollection[model.Secretariat](),
		committees:   newCollection[model.Committee](),
		execBoard:    newCollection[model.ExecutiveBoard](),
		tasks:        newCollection[model.Task](),
		logistics:    newCollection[model.Logistics](),
		marketing:    newCollection[model.Marketing](),
		sponsorships: newCollection[model.Sponsorship](),
		updates:      newCollection[model.Update](),
		evaluations:  newCollection[model.DelegateEvaluation](),
		criteria:     newCollection[model.MarkingCriteria](),
		awardTypes:   newCollection[model.AwardType](),
		awards:       newCollection[model.DelegateAward](),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.seed {
		s.seedData()
	}

	return s
}

// Portfolios lists country seats before NGOs, each group sorted by name.
func (s *MemStore) Portfolios(_ context.Context) []model.Portfolio {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.portfolios.list()
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Type != out[j].Type {
			return out[i].Type == "Country"
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func (s *MemStore) Portfolio(_ context.Context, id string) (model.Portfolio, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.portfolios.get(id)
	if !ok {
		return model.Portfolio{}, ErrNotFound
	}
	return p, nil
}

func (s *MemStore) CreatePortfolio(_ context.Context, p model.Portfolio) model.Portfolio {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.newID()
	s.portfolios.put(p.ID, p)
	return p
}

func (s *MemStore) UpdatePortfolio(_ context.Context, id string, patch model.PortfolioPatch) (model.Portfolio, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.portfolios.get(id)
	if !ok {
		return model.Portfolio{}, ErrNotFound
	}
	updated := existing.Merge(patch)
	s.portfolios.put(id, updated)
	return updated, nil
}

func (s *MemStore) DeletePortfolio(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.portfolios.remove(id) {
		return ErrNotFound
	}
	return nil
}

func (s *MemStore) Delegates(_ context.Context) []model.Delegate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.delegates.list()
}

func (s *MemStore) Delegate(_ context.Context, id string) (model.Delegate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.delegates.get(id)
	if !ok {
		return model.Delegate{}, ErrNotFound
	}
	return d, nil
}

func (s *MemStore) CreateDelegate(_ context.Context, d model.Delegate) model.Delegate {
	s.mu.Lock()
	defer s.mu.Unlock()
	d.ID = s.newID()
	s.delegates.put(d.ID, d)
	return d
}

func (s *MemStore) UpdateDelegate(_ context.Context, id string, patch model.DelegatePatch) (model.Delegate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.delegates.get(id)
	if !ok {
		return model.Delegate{}, ErrNotFound
	}
	updated := existing.Merge(patch)
	s.delegates.put(id, updated)
	return updated, nil
}

func (s *MemStore) DeleteDelegate(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.delegates.remove(id) {
		return ErrNotFound
	}
	return nil
}

func (s *MemStore) Secretariat(_ context.Context) []model.Secretariat {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.secretariat.list()
}

func (s *MemStore) CreateSecretariat(_ context.Context, m model.Secretariat) model.Secretariat {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = s.newID()
	s.secretariat.put(m.ID, m)
	return m
}

func (s *MemStore) UpdateSecretariat(_ context.Context, id string, patch model.SecretariatPatch) (model.Secretariat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.secretariat.get(id)
	if !ok {
		return model.Secretariat{}, ErrNotFound
	}
	updated := existing.Merge(patch)
	s.secretariat.put(id, updated)
	return updated, nil
}

func (s *MemStore) DeleteSecretariat(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.secretariat.remove(id) {
		return ErrNotFound
	}
	return nil
}

func (s *MemStore) Committees(_ context.Context) []model.Committee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.committees.list()
}

func (s *MemStore) CreateCommittee(_ context.Context, c model.Committee) model.Committee {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.newID()
	s.committees.put(c.ID, c)
	return c
}

func (s *MemStore) UpdateCommittee(_ context.Context, id string, patch model.CommitteePatch) (model.Committee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.committees.get(id)
	if !ok {
		return model.Committee{}, ErrNotFound
	}
	updated := existing.Merge(patch)
	s.committees.put(id, updated)
	return updated, nil
}

func (s *MemStore) DeleteCommittee(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.committees.remove(id) {
		return ErrNotFound
	}
	return nil
}

func (s *MemStore) ExecutiveBoard(_ context.Context) []model.ExecutiveBoard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.execBoard.list()
}

func (s *MemStore) CreateExecutiveBoard(_ context.Context, m model.ExecutiveBoard) model.ExecutiveBoard {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = s.newID()
	s.execBoard.put(m.ID, m)
	return m
}

func (s *MemStore) UpdateExecutiveBoard(_ context.Context, id string, patch model.ExecutiveBoardPatch) (model.ExecutiveBoard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.execBoard.get(id)
	if !ok {
		return model.ExecutiveBoard{}, ErrNotFound
	}
	updated := existing.Merge(patch)
	s.execBoard.put(id, updated)
	return updated, nil
}

func (s *MemStore) DeleteExecutiveBoard(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.execBoard.remove(id) {
		return ErrNotFound
	}
	return nil
}

// Tasks lists pending work first, then high-priority work.
func (s *MemStore) Tasks(_ context.Context) []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.tasks.list()
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Status == "pending" && b.Status != "pending" {
			return true
		}
		if a.Status != "pending" && b.Status == "pending" {
			return false
		}
		return a.Priority == "high" && b.Priority != "high"
	})
	return out
}

func (s *MemStore) CreateTask(_ context.Context, t model.Task) model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = s.newID()
	s.tasks.put(t.ID, t)
	return t
}

func (s *MemStore) UpdateTask(_ context.Context, id string, patch model.TaskPatch) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.tasks.get(id)
	if !ok {
		return model.Task{}, ErrNotFound
	}
	updated := existing.Merge(patch)
	s.tasks.put(id, updated)
	return updated, nil
}

func (s *MemStore) DeleteTask(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.tasks.remove(id) {
		return ErrNotFound
	}
	return nil
}

func (s *MemStore) Logistics(_ context.Context) []model.Logistics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.logistics.list()
}

func (s *MemStore) CreateLogistics(_ context.Context, l model.Logistics) model.Logistics {
	s.mu.Lock()
	defer s.mu.Unlock()
	l.ID = s.newID()
	s.logistics.put(l.ID, l)
	return l
}

func (s *MemStore) UpdateLogistics(_ context.Context, id string, patch model.LogisticsPatch) (model.Logistics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.logistics.get(id)
	if !ok {
		return model.Logistics{}, ErrNotFound
	}
	updated := existing.Merge(patch)
	s.logistics.put(id, updated)
	return updated, nil
}

func (s *MemStore) DeleteLogistics(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.logistics.remove(id) {
		return ErrNotFound
	}
	return nil
}

// Marketing lists campaigns newest start date first; undated campaigns keep
// their insertion position.
func (s *MemStore) Marketing(_ context.Context) []model.Marketing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.marketing.list()
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.StartDate == nil || b.StartDate == nil {
			return false
		}
		return a.StartDate.After(*b.StartDate)
	})
	return out
}

func (s *MemStore) CreateMarketing(_ context.Context, m model.Marketing) model.Marketing {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = s.newID()
	s.marketing.put(m.ID, m)
	return m
}

func (s *MemStore) UpdateMarketing(_ context.Context, id string, patch model.MarketingPatch) (model.Marketing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.marketing.get(id)
	if !ok {
		return model.Marketing{}, ErrNotFound
	}
	updated := existing.Merge(patch)
	s.marketing.put(id, updated)
	return updated, nil
}

func (s *MemStore) DeleteMarketing(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.marketing.remove(id) {
		return ErrNotFound
	}
	return nil
}

func (s *MemStore) Sponsorships(_ context.Context) []model.Sponsorship {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.sponsorships.list()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount > out[j].Amount
	})
	return out
}

func (s *MemStore) CreateSponsorship(_ context.Context, m model.Sponsorship) model.Sponsorship {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = s.newID()
	s.sponsorships.put(m.ID, m)
	return m
}

func (s *MemStore) UpdateSponsorship(_ context.Context, id string, patch model.SponsorshipPatch) (model.Sponsorship, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.sponsorships.get(id)
	if !ok {
		return model.Sponsorship{}, ErrNotFound
	}
	updated := existing.Merge(patch)
	s.sponsorships.put(id, updated)
	return updated, nil
}

func (s *MemStore) DeleteSponsorship(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.sponsorships.remove(id) {
		return ErrNotFound
	}
	return nil
}

func (s *MemStore) Updates(_ context.Context) []model.Update {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.updates.list()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

func (s *MemStore) CreateUpdate(_ context.Context, u model.Update) model.Update {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = s.newID()
	u.Timestamp = s.now()
	s.updates.put(u.ID, u)
	return u
}

func (s *MemStore) UpdateUpdate(_ context.Context, id string, patch model.UpdatePatch) (model.Update, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.updates.get(id)
	if !ok {
		return model.Update{}, ErrNotFound
	}
	updated := existing.Merge(patch)
	s.updates.put(id, updated)
	return updated, nil
}

func (s *MemStore) DeleteUpdate(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.updates.remove(id) {
		return ErrNotFound
	}
	return nil
}

func (s *MemStore) Evaluations(_ context.Context) []model.DelegateEvaluation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.evaluations.list()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// EvaluationsByCommittee returns the committee's evaluations in insertion
// order. Callers that rank must use a stable sort so equal totals keep this
// order.
func (s *MemStore) EvaluationsByCommittee(_ context.Context, committeeName string) []model.DelegateEvaluation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.DelegateEvaluation
	for _, e := range s.evaluations.list() {
		if e.Committee == committeeName {
			out = append(out, e)
		}
	}
	return out
}

func (s *MemStore) CreateEvaluation(_ context.Context, e model.DelegateEvaluation) model.DelegateEvaluation {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = s.newID()
	e.Timestamp = s.now()
	s.evaluations.put(e.ID, e)
	return e
}

func (s *MemStore) UpdateEvaluation(_ context.Context, id string, patch model.DelegateEvaluationPatch) (model.DelegateEvaluation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.evaluations.get(id)
	if !ok {
		return model.DelegateEvaluation{}, ErrNotFound
	}
	updated := existing.Merge(patch)
	s.evaluations.put(id, updated)
	return updated, nil
}

func (s *MemStore) DeleteEvaluation(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.evaluations.remove(id) {
		return ErrNotFound
	}
	return nil
}

func (s *MemStore) MarkingCriteria(_ context.Context) []model.MarkingCriteria {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.criteria.list()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OrderIndex < out[j].OrderIndex
	})
	return out
}

func (s *MemStore) CreateMarkingCriteria(_ context.Context, m model.MarkingCriteria) model.MarkingCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = s.newID()
	s.criteria.put(m.ID, m)
	return m
}

func (s *MemStore) UpdateMarkingCriteria(_ context.Context, id string, patch model.MarkingCriteriaPatch) (model.MarkingCriteria, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.criteria.get(id)
	if !ok {
		return model.MarkingCriteria{}, ErrNotFound
	}
	updated := existing.Merge(patch)
	s.criteria.put(id, updated)
	return updated, nil
}

func (s *MemStore) DeleteMarkingCriteria(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.criteria.remove(id) {
		return ErrNotFound
	}
	return nil
}

func (s *MemStore) AwardTypes(_ context.Context) []model.AwardType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedAwardTypes(false)
}

func (s *MemStore) ActiveAwardTypes(_ context.Context) []model.AwardType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedAwardTypes(true)
}

func (s *MemStore) sortedAwardTypes(activeOnly bool) []model.AwardType {
	var out []model.AwardType
	for _, at := range s.awardTypes.list() {
		if activeOnly && at.IsActive != 1 {
			continue
		}
		out = append(out, at)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OrderIndex < out[j].OrderIndex
	})
	return out
}

func (s *MemStore) CreateAwardType(_ context.Context, a model.AwardType) model.AwardType {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = s.newID()
	s.awardTypes.put(a.ID, a)
	return a
}

func (s *MemStore) UpdateAwardType(_ context.Context, id string, patch model.AwardTypePatch) (model.AwardType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.awardTypes.get(id)
	if !ok {
		return model.AwardType{}, ErrNotFound
	}
	updated := existing.Merge(patch)
	s.awardTypes.put(id, updated)
	return updated, nil
}

func (s *MemStore) DeleteAwardType(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.awardTypes.remove(id) {
		return ErrNotFound
	}
	return nil
}

func (s *MemStore) Awards(_ context.Context) []model.DelegateAward {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.awards.list()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// AwardsByCommittee returns the committee's awards ordered by the prestige
// of their award type; awards whose type was deleted sort last.
func (s *MemStore) AwardsByCommittee(_ context.Context, committeeID string) []model.DelegateAward {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.DelegateAward
	for _, a := range s.awards.list() {
		if a.CommitteeID == committeeID {
			out = append(out, a)
		}
	}
	orderOf := func(typeID string) int {
		if at, ok := s.awardTypes.get(typeID); ok {
			return at.OrderIndex
		}
		return unknownTypeOrder
	}
	sort.SliceStable(out, func(i, j int) bool {
		return orderOf(out[i].AwardTypeID) < orderOf(out[j].AwardTypeID)
	})
	return out
}

func (s *MemStore) CreateAward(_ context.Context, a model.DelegateAward) model.DelegateAward {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = s.newID()
	a.Timestamp = s.now()
	s.awards.put(a.ID, a)
	return a
}

func (s *MemStore) UpdateAward(_ context.Context, id string, patch model.DelegateAwardPatch) (model.DelegateAward, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.awards.get(id)
	if !ok {
		return model.DelegateAward{}, ErrNotFound
	}
	updated := existing.Merge(patch)
	s.awards.put(id, updated)
	return updated, nil
}

func (s *MemStore) DeleteAward(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.awards.remove(id) {
		return ErrNotFound
	}
	return nil
}

func (s *MemStore) Settings(_ context.Context) (model.AppSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.settings == nil {
		return model.AppSettings{}, ErrNotFound
	}
	return *s.settings, nil
}

// UpdateSettings merges into the singleton, creating it with defaults on
// first use.
func (s *MemStore) UpdateSettings(_ context.Context, patch model.AppSettingsPatch) model.AppSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.settings == nil {
		s.settings = &model.AppSettings{
			ID:             s.newID(),
			Currency:       "USD",
			CurrencySymbol: "$",
		}
	}
	merged := s.settings.Merge(patch)
	s.settings = &merged
	return merged
}

func (s *MemStore) Counts(_ context.Context) map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]int{
		"portfolios":      s.portfolios.size(),
		"delegates":       s.delegates.size(),
		"secretariat":     s.secretariat.size(),
		"committees":      s.committees.size(),
		"executiveBoard":  s.execBoard.size(),
		"tasks":           s.tasks.size(),
		"logistics":       s.logistics.size(),
		"marketing":       s.marketing.size(),
		"sponsorships":    s.sponsorships.size(),
		"updates":         s.updates.size(),
		"evaluations":     s.evaluations.size(),
		"markingCriteria": s.criteria.size(),
		"awardTypes":      s.awardTypes.size(),
		"awards":          s.awards.size(),
	}
}

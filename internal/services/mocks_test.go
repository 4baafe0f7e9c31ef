package services_test

import (
	"context"
	"sort"
	"time"

	"oakline-partners/internal/models"
	"oakline-partners/internal/repositories"
	"oakline-partners/pkg/funding"
	"oakline-partners/pkg/homefacts"

	"go.mongodb.org/mongo-driver/mongo"
)

// fakeLeadRepo keeps leads in a map and records writes so tests can assert
// on persistence without Mongo.
type fakeLeadRepo struct {
	leads     map[string]models.Lead
	createErr error
	updateErr error
	created   int
	updated   int
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{leads: make(map[string]models.Lead)}
}

func (f *fakeLeadRepo) Create(ctx context.Context, lead *models.Lead) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created++
	f.leads[lead.LeadID] = *lead
	return nil
}

func (f *fakeLeadRepo) Update(ctx context.Context, lead *models.Lead) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated++
	f.leads[lead.LeadID] = *lead
	return nil
}

func (f *fakeLeadRepo) FindByLeadID(ctx context.Context, leadID string) (*models.Lead, error) {
	lead, ok := f.leads[leadID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &lead, nil
}

func (f *fakeLeadRepo) FindByLeadIDs(ctx context.Context, leadIDs []string) ([]models.Lead, error) {
	out := make([]models.Lead, 0, len(leadIDs))
	for _, id := range leadIDs {
		if lead, ok := f.leads[id]; ok {
			out = append(out, lead)
		}
	}
	return out, nil
}

func (f *fakeLeadRepo) FindByPartner(ctx context.Context, partnerID string, offset, limit int) ([]models.Lead, int64, error) {
	all := f.partnerLeads(partnerID)
	total := int64(len(all))
	if offset >= len(all) {
		return []models.Lead{}, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (f *fakeLeadRepo) CountByPartner(ctx context.Context, partnerID string) (int64, error) {
	return int64(len(f.partnerLeads(partnerID))), nil
}

func (f *fakeLeadRepo) partnerLeads(partnerID string) []models.Lead {
	var all []models.Lead
	for _, lead := range f.leads {
		if lead.PartnerID == partnerID {
			all = append(all, lead)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return all
}

// fakePartnerRepo keeps partners keyed by hex ID and by email.
type fakePartnerRepo struct {
	byID      map[string]models.Partner
	byEmail   map[string]models.Partner
	createErr error
}

func newFakePartnerRepo() *fakePartnerRepo {
	return &fakePartnerRepo{
		byID:    make(map[string]models.Partner),
		byEmail: make(map[string]models.Partner),
	}
}

func (f *fakePartnerRepo) Create(ctx context.Context, partner *models.Partner) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.byID[partner.ID.Hex()] = *partner
	f.byEmail[partner.Email] = *partner
	return nil
}

func (f *fakePartnerRepo) FindByEmail(ctx context.Context, email string) (*models.Partner, error) {
	partner, ok := f.byEmail[email]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &partner, nil
}

func (f *fakePartnerRepo) FindByID(ctx context.Context, id string) (*models.Partner, error) {
	partner, ok := f.byID[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &partner, nil
}

func (f *fakePartnerRepo) UpdateStatus(ctx context.Context, id string, status models.PartnerStatus) error {
	partner, ok := f.byID[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	partner.Status = status
	f.byID[id] = partner
	f.byEmail[partner.Email] = partner
	return nil
}

// fakeDecisionCache is an in-memory stand-in for the redis layer. Writes are
// counted so tests can assert when the quote flow caches a decision and when
// it deliberately does not.
type fakeDecisionCache struct {
	decisions      map[string]repositories.CachedDecision
	leads          map[string]models.Lead
	lists          map[string][]string
	keySets        map[string][]string
	decisionWrites int
	invalidated    []string
	getDecisionErr error
}

func newFakeDecisionCache() *fakeDecisionCache {
	return &fakeDecisionCache{
		decisions: make(map[string]repositories.CachedDecision),
		leads:     make(map[string]models.Lead),
		lists:     make(map[string][]string),
		keySets:   make(map[string][]string),
	}
}

func (f *fakeDecisionCache) GetDecision(ctx context.Context, key string) (*repositories.CachedDecision, error) {
	if f.getDecisionErr != nil {
		return nil, f.getDecisionErr
	}
	cached, ok := f.decisions[key]
	if !ok {
		return nil, nil
	}
	return &cached, nil
}

func (f *fakeDecisionCache) SetDecision(ctx context.Context, key string, cached *repositories.CachedDecision, expiration time.Duration) error {
	f.decisionWrites++
	f.decisions[key] = *cached
	return nil
}

func (f *fakeDecisionCache) GetLead(ctx context.Context, key string) (*models.Lead, error) {
	lead, ok := f.leads[key]
	if !ok {
		return nil, nil
	}
	return &lead, nil
}

func (f *fakeDecisionCache) SetLead(ctx context.Context, key string, lead *models.Lead, expiration time.Duration) error {
	f.leads[key] = *lead
	return nil
}

func (f *fakeDecisionCache) GetLeadList(ctx context.Context, key string) ([]string, error) {
	return f.lists[key], nil
}

func (f *fakeDecisionCache) SetLeadList(ctx context.Context, key string, leadIDs []string, expiration time.Duration) error {
	f.lists[key] = leadIDs
	return nil
}

func (f *fakeDecisionCache) AddCacheKeyToLeadSet(ctx context.Context, leadID, cacheKey string) error {
	f.keySets[leadID] = append(f.keySets[leadID], cacheKey)
	return nil
}

func (f *fakeDecisionCache) InvalidateLeadCacheKeys(ctx context.Context, leadID string) error {
	f.invalidated = append(f.invalidated, leadID)
	delete(f.leads, "lead:"+leadID)
	return nil
}

func (f *fakeDecisionCache) Delete(ctx context.Context, key string) error {
	delete(f.decisions, key)
	delete(f.leads, key)
	delete(f.lists, key)
	return nil
}

// fakeProvider returns a fixed record and counts calls so cache-hit paths
// can prove the provider was skipped.
type fakeProvider struct {
	record *homefacts.PropertyRecord
	err    error
	calls  int
}

func (f *fakeProvider) SearchByAddress(ctx context.Context, street, city, state, zip string) (*homefacts.PropertyRecord, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	record := *f.record
	return &record, nil
}

// fakeFunding records the last submission and returns a canned reference.
type fakeFunding struct {
	reference string
	err       error
	last      *funding.Submission
	calls     int
}

func (f *fakeFunding) Submit(ctx context.Context, sub *funding.Submission) (string, error) {
	f.calls++
	f.last = sub
	if f.err != nil {
		return "", f.err
	}
	return f.reference, nil
}

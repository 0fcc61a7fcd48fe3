package service

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/skillpassport/backend/internal/domain"
)

// In-memory repository fakes shared by the service tests.

type fakeUserRepo struct {
	users map[uuid.UUID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	if u, ok := f.users[id]; ok {
		u.PasswordHash = passwordHash
	}
	return nil
}

type fakeProfileRepo struct {
	profiles map[uuid.UUID]*domain.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[uuid.UUID]*domain.Profile)}
}

func (f *fakeProfileRepo) Create(_ context.Context, profile *domain.Profile) error {
	cp := *profile
	f.profiles[profile.ID] = &cp
	return nil
}

func (f *fakeProfileRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfileRepo) Update(_ context.Context, id uuid.UUID, update domain.ProfileUpdate) (*domain.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, nil
	}
	if update.Name != nil {
		p.Name = update.Name
	}
	if update.AvatarURL != nil {
		p.AvatarURL = update.AvatarURL
	}
	if update.LinkedInURL != nil {
		p.LinkedInURL = update.LinkedInURL
	}
	if update.GitHubURL != nil {
		p.GitHubURL = update.GitHubURL
	}
	if update.Theme != nil {
		p.Theme = *update.Theme
	}
	cp := *p
	return &cp, nil
}

type fakeCredentialRepo struct {
	creds map[uuid.UUID]*domain.Credential
}

func newFakeCredentialRepo() *fakeCredentialRepo {
	return &fakeCredentialRepo{creds: make(map[uuid.UUID]*domain.Credential)}
}

func (f *fakeCredentialRepo) Create(_ context.Context, cred *domain.Credential) error {
	cp := *cred
	f.creds[cred.ID] = &cp
	return nil
}

func (f *fakeCredentialRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Credential, error) {
	c, ok := f.creds[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCredentialRepo) ListByOwner(_ context.Context, userID uuid.UUID) ([]domain.Credential, error) {
	var out []domain.Credential
	for _, c := range f.creds {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCredentialRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.creds, id)
	return nil
}

func (f *fakeCredentialRepo) CountByOwner(_ context.Context, userID uuid.UUID) (int, int, error) {
	total, verified := 0, 0
	for _, c := range f.creds {
		if c.UserID != userID {
			continue
		}
		total++
		if c.Verified() {
			verified++
		}
	}
	return total, verified, nil
}

type fakeConnectionRepo struct {
	conns map[uuid.UUID]*domain.Connection
}

func newFakeConnectionRepo() *fakeConnectionRepo {
	return &fakeConnectionRepo{conns: make(map[uuid.UUID]*domain.Connection)}
}

func (f *fakeConnectionRepo) Create(_ context.Context, conn *domain.Connection) error {
	cp := *conn
	f.conns[conn.ID] = &cp
	return nil
}

func (f *fakeConnectionRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Connection, error) {
	c, ok := f.conns[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeConnectionRepo) GetLiveBetween(_ context.Context, userA, userB uuid.UUID) (*domain.Connection, error) {
	for _, c := range f.conns {
		if c.Status == domain.ConnectionRejected {
			continue
		}
		if (c.UserID == userA && c.ConnectionID == userB) || (c.UserID == userB && c.ConnectionID == userA) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeConnectionRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	if c, ok := f.conns[id]; ok {
		c.Status = status
	}
	return nil
}

func (f *fakeConnectionRepo) DeleteBetween(_ context.Context, userA, userB uuid.UUID) error {
	for id, c := range f.conns {
		if (c.UserID == userA && c.ConnectionID == userB) || (c.UserID == userB && c.ConnectionID == userA) {
			delete(f.conns, id)
		}
	}
	return nil
}

func (f *fakeConnectionRepo) ListAccepted(_ context.Context, userID uuid.UUID) ([]domain.Connection, error) {
	var out []domain.Connection
	for _, c := range f.conns {
		if c.Status != domain.ConnectionAccepted {
			continue
		}
		if c.UserID == userID || c.ConnectionID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeConnectionRepo) ListRequestsReceived(_ context.Context, userID uuid.UUID) ([]domain.Connection, error) {
	var out []domain.Connection
	for _, c := range f.conns {
		if c.Status == domain.ConnectionPending && c.ConnectionID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeConnectionRepo) ListRequestsSent(_ context.Context, userID uuid.UUID) ([]domain.Connection, error) {
	var out []domain.Connection
	for _, c := range f.conns {
		if c.Status == domain.ConnectionPending && c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeConnectionRepo) ListDiscoverable(_ context.Context, _ uuid.UUID) ([]domain.Profile, error) {
	return nil, nil
}

func (f *fakeConnectionRepo) CountAccepted(_ context.Context, userID uuid.UUID) (int, error) {
	conns, _ := f.ListAccepted(context.Background(), userID)
	return len(conns), nil
}

type fakeDraftStore struct {
	mu     sync.Mutex
	drafts map[string]*domain.CredentialDraft
}

func newFakeDraftStore() *fakeDraftStore {
	return &fakeDraftStore{drafts: make(map[string]*domain.CredentialDraft)}
}

func draftKey(userID, draftID uuid.UUID) string {
	return userID.String() + ":" + draftID.String()
}

func (f *fakeDraftStore) Save(_ context.Context, draft *domain.CredentialDraft) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *draft
	f.drafts[draftKey(draft.UserID, draft.ID)] = &cp
	return nil
}

func (f *fakeDraftStore) Get(_ context.Context, userID, draftID uuid.UUID) (*domain.CredentialDraft, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.drafts[draftKey(userID, draftID)]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (f *fakeDraftStore) Delete(_ context.Context, userID, draftID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.drafts, draftKey(userID, draftID))
	return nil
}

type fakePrefStore struct {
	prefs map[string]*domain.ClientPrefs
}

func newFakePrefStore() *fakePrefStore {
	return &fakePrefStore{prefs: make(map[string]*domain.ClientPrefs)}
}

func (f *fakePrefStore) Get(_ context.Context, clientID string) (*domain.ClientPrefs, error) {
	p, ok := f.prefs[clientID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakePrefStore) Set(_ context.Context, clientID string, prefs *domain.ClientPrefs) error {
	cp := *prefs
	f.prefs[clientID] = &cp
	return nil
}

type fakeStore struct {
	files map[string][]byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{files: make(map[string][]byte)}
}

func (f *fakeStore) Save(_ context.Context, bucket, key string, data []byte) error {
	f.files[bucket+"/"+key] = data
	return nil
}

func (f *fakeStore) Delete(_ context.Context, bucket, key string) error {
	delete(f.files, bucket+"/"+key)
	return nil
}

func (f *fakeStore) PublicURL(bucket, key string) string {
	return "http://files.test/files/" + bucket + "/" + key
}

type fakeNotifier struct {
	requested []*domain.Connection
	accepted  []*domain.Connection
}

func (f *fakeNotifier) ConnectionRequested(conn *domain.Connection) {
	f.requested = append(f.requested, conn)
}

func (f *fakeNotifier) ConnectionAccepted(conn *domain.Connection) {
	f.accepted = append(f.accepted, conn)
}

package services

import (
	"context"
	"time"

	"main-gestdoc/internal/adapters/persistence/models"
	"main-gestdoc/internal/adapters/persistence/repositories"
	"main-gestdoc/internal/core/domain"

	"gorm.io/gorm"
)

// In-memory repository fakes shared by the service tests.

type fakeClientRepo struct {
	clients map[string]*models.Client
	order   []string
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[string]*models.Client)}
}

func (r *fakeClientRepo) Create(_ context.Context, client *models.Client) error {
	r.clients[client.ID] = client
	r.order = append(r.order, client.ID)
	return nil
}

func (r *fakeClientRepo) GetByID(_ context.Context, id string) (*models.Client, error) {
	client, ok := r.clients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return client, nil
}

func (r *fakeClientRepo) Update(_ context.Context, client *models.Client) error {
	if _, ok := r.clients[client.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.clients[client.ID] = client
	return nil
}

func (r *fakeClientRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := r.clients[id]; !ok {
		return false, nil
	}
	delete(r.clients, id)
	return true, nil
}

func (r *fakeClientRepo) List(_ context.Context, offset, limit int) ([]*models.Client, int64, error) {
	all := r.all()
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *fakeClientRepo) ListAll(_ context.Context) ([]*models.Client, error) {
	return r.all(), nil
}

func (r *fakeClientRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.clients)), nil
}

func (r *fakeClientRepo) all() []*models.Client {
	out := make([]*models.Client, 0, len(r.clients))
	for i := len(r.order) - 1; i >= 0; i-- {
		if client, ok := r.clients[r.order[i]]; ok {
			out = append(out, client)
		}
	}
	return out
}

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if user.ID == 0 {
		user.ID = r.nextID
	}
	if user.ID >= r.nextID {
		r.nextID = user.ID + 1
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByCorreo(_ context.Context, correo string) (*models.User, error) {
	for _, user := range r.users {
		if user.Correo == correo {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*models.User, error) {
	out := make([]*models.User, 0, len(r.users))
	for id := r.nextID; id > 0; id-- {
		if user, ok := r.users[id]; ok {
			out = append(out, user)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) ExistsByCorreo(ctx context.Context, correo string) (bool, error) {
	_, err := r.GetByCorreo(ctx, correo)
	return err == nil, nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type fakeProfileRepo struct {
	profiles map[uint]*models.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[uint]*models.Profile{
		1: {ID: 1, Nombre: "Administrador", Descripcion: "Acceso total al sistema"},
		2: {ID: 2, Nombre: "Gerente", Descripcion: "Gestión de proyectos"},
		3: {ID: 3, Nombre: "Operador", Descripcion: "Operaciones generales"},
	}}
}

func (r *fakeProfileRepo) GetByID(_ context.Context, id uint) (*models.Profile, error) {
	profile, ok := r.profiles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return profile, nil
}

func (r *fakeProfileRepo) List(_ context.Context) ([]*models.Profile, error) {
	out := make([]*models.Profile, 0, len(r.profiles))
	for id := uint(1); id <= uint(len(r.profiles)); id++ {
		out = append(out, r.profiles[id])
	}
	return out, nil
}

type fakeGroupRepo struct {
	groups map[uint]*models.Group
}

func newFakeGroupRepo() *fakeGroupRepo {
	return &fakeGroupRepo{groups: map[uint]*models.Group{
		1: {ID: 1, Nombre: "Administración", Descripcion: "Equipo de administración"},
		2: {ID: 2, Nombre: "Operaciones", Descripcion: "Equipo de operaciones"},
	}}
}

func (r *fakeGroupRepo) GetByID(_ context.Context, id uint) (*models.Group, error) {
	group, ok := r.groups[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return group, nil
}

func (r *fakeGroupRepo) List(_ context.Context) ([]*models.Group, error) {
	out := make([]*models.Group, 0, len(r.groups))
	for id := uint(1); id <= uint(len(r.groups)); id++ {
		out = append(out, r.groups[id])
	}
	return out, nil
}

type fakeRefreshTokenRepo struct {
	tokens             map[string]*models.RefreshToken
	nextID             uint
	deleteExpiredCalls int
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{tokens: make(map[string]*models.RefreshToken), nextID: 1}
}

func (r *fakeRefreshTokenRepo) Create(_ context.Context, token *models.RefreshToken) error {
	token.ID = r.nextID
	r.nextID++
	r.tokens[token.TokenHash] = token
	return nil
}

func (r *fakeRefreshTokenRepo) GetByTokenHash(_ context.Context, hash string) (*models.RefreshToken, error) {
	token, ok := r.tokens[hash]
	if !ok || token.RevokedAt != nil {
		return nil, gorm.ErrRecordNotFound
	}
	return token, nil
}

func (r *fakeRefreshTokenRepo) Revoke(_ context.Context, id uint) error {
	now := time.Now()
	for _, token := range r.tokens {
		if token.ID == id {
			token.RevokedAt = &now
		}
	}
	return nil
}

func (r *fakeRefreshTokenRepo) RevokeByTokenHash(_ context.Context, hash string) error {
	if token, ok := r.tokens[hash]; ok {
		now := time.Now()
		token.RevokedAt = &now
	}
	return nil
}

func (r *fakeRefreshTokenRepo) RevokeAllByUserID(_ context.Context, userID uint) error {
	now := time.Now()
	for _, token := range r.tokens {
		if token.UserID == userID {
			token.RevokedAt = &now
		}
	}
	return nil
}

func (r *fakeRefreshTokenRepo) DeleteExpired(_ context.Context) error {
	r.deleteExpiredCalls++
	for hash, token := range r.tokens {
		if token.IsExpired() {
			delete(r.tokens, hash)
		}
	}
	return nil
}

type fakeDocStore[T any] struct {
	docs []*T
}

func newFakeDocStore[T any]() *fakeDocStore[T] {
	return &fakeDocStore[T]{}
}

func (r *fakeDocStore[T]) baseOf(doc *T) *models.DocumentBase {
	return any(doc).(models.AppDocument).Base()
}

func (r *fakeDocStore[T]) Create(_ context.Context, doc *T) error {
	base := r.baseOf(doc)
	if base.CreationDate.IsZero() {
		base.CreationDate = time.Now()
	}
	r.docs = append(r.docs, doc)
	return nil
}

func (r *fakeDocStore[T]) GetByID(_ context.Context, id string) (*T, error) {
	for _, doc := range r.docs {
		if r.baseOf(doc).ID == id {
			return doc, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeDocStore[T]) Save(_ context.Context, doc *T) error {
	id := r.baseOf(doc).ID
	for i, existing := range r.docs {
		if r.baseOf(existing).ID == id {
			r.docs[i] = doc
			return nil
		}
	}
	r.docs = append(r.docs, doc)
	return nil
}

func (r *fakeDocStore[T]) Delete(_ context.Context, id string) (bool, error) {
	for i, doc := range r.docs {
		if r.baseOf(doc).ID == id {
			r.docs = append(r.docs[:i], r.docs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeDocStore[T]) List(_ context.Context) ([]*T, error) {
	out := make([]*T, 0, len(r.docs))
	for i := len(r.docs) - 1; i >= 0; i-- {
		out = append(out, r.docs[i])
	}
	return out, nil
}

func (r *fakeDocStore[T]) Count(_ context.Context) (int64, error) {
	return int64(len(r.docs)), nil
}

func (r *fakeDocStore[T]) ListDueBetween(_ context.Context, from, to time.Time, excluded []domain.DocumentStatus) ([]*T, error) {
	var out []*T
	for _, doc := range r.docs {
		base := r.baseOf(doc)
		if base.DueDate == nil {
			continue
		}
		if base.DueDate.Before(from) || base.DueDate.After(to) {
			continue
		}
		if statusIn(excluded, base.Status) {
			continue
		}
		out = append(out, doc)
	}
	return out, nil
}

type fakeActivityRepo struct {
	entries []*models.ActivityLog
	nextID  uint
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{nextID: 1}
}

func (r *fakeActivityRepo) Record(_ context.Context, entry *models.ActivityLog) error {
	entry.ID = r.nextID
	r.nextID++
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	r.entries = append(r.entries, entry)
	// Same eviction bound the real repository enforces
	if len(r.entries) > repositories.ActivityLogCapacity {
		r.entries = r.entries[len(r.entries)-repositories.ActivityLogCapacity:]
	}
	return nil
}

func (r *fakeActivityRepo) List(_ context.Context, limit int) ([]*models.ActivityLog, error) {
	out := make([]*models.ActivityLog, 0, len(r.entries))
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.entries[i])
	}
	return out, nil
}

func (r *fakeActivityRepo) byType(activityType domain.ActivityType) []*models.ActivityLog {
	var out []*models.ActivityLog
	for _, entry := range r.entries {
		if entry.Type == activityType {
			out = append(out, entry)
		}
	}
	return out
}

type fakeStatusConfigRepo struct {
	configs map[domain.DocumentType]*models.ManagedStatusConfig
}

func newFakeStatusConfigRepo() *fakeStatusConfigRepo {
	return &fakeStatusConfigRepo{configs: make(map[domain.DocumentType]*models.ManagedStatusConfig)}
}

func (r *fakeStatusConfigRepo) Get(_ context.Context, docType domain.DocumentType) (*models.ManagedStatusConfig, error) {
	config, ok := r.configs[docType]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return config, nil
}

func (r *fakeStatusConfigRepo) List(_ context.Context) ([]*models.ManagedStatusConfig, error) {
	out := make([]*models.ManagedStatusConfig, 0, len(r.configs))
	for _, docType := range domain.AllDocumentTypes() {
		if config, ok := r.configs[docType]; ok {
			out = append(out, config)
		}
	}
	return out, nil
}

func (r *fakeStatusConfigRepo) Upsert(_ context.Context, config *models.ManagedStatusConfig) error {
	r.configs[config.DocumentType] = config
	return nil
}

type fakeStatusHistoryRepo struct {
	entries []*models.StatusHistory
	nextID  uint
}

func newFakeStatusHistoryRepo() *fakeStatusHistoryRepo {
	return &fakeStatusHistoryRepo{nextID: 1}
}

func (r *fakeStatusHistoryRepo) Create(_ context.Context, entry *models.StatusHistory) error {
	entry.ID = r.nextID
	r.nextID++
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeStatusHistoryRepo) ListByDocument(_ context.Context, docType domain.DocumentType, docID string) ([]*models.StatusHistory, error) {
	var out []*models.StatusHistory
	for i := len(r.entries) - 1; i >= 0; i-- {
		entry := r.entries[i]
		if entry.DocumentType == docType && entry.DocumentID == docID {
			out = append(out, entry)
		}
	}
	return out, nil
}

package impl

import (
	"context"
	"sort"
	"time"

	"localfarm/internal/domain/entity"
	"localfarm/internal/domain/repository"
	"localfarm/internal/domain/service"

	"github.com/pkg/errors"
)

// In-memory fakes standing in for the persistence and infrastructure layers.
// Each fake exposes an err field to force failures on every call.

type fakeProductRepo struct {
	products map[int64]*entity.Product
	nextID   int64
	err      error
}

func newFakeProductRepo(seed ...*entity.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: make(map[int64]*entity.Product)}
	for _, product := range seed {
		repo.nextID++
		cloned := *product
		cloned.ID = repo.nextID
		repo.products[cloned.ID] = &cloned
	}

	return repo
}

func (r *fakeProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	if r.err != nil {
		return nil, r.err
	}

	list := make([]*entity.Product, 0, len(r.products))
	for _, product := range r.products {
		cloned := *product
		list = append(list, &cloned)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })

	return list, nil
}

func (r *fakeProductRepo) FindByID(_ context.Context, id int64) (*entity.Product, error) {
	if r.err != nil {
		return nil, r.err
	}
	product, ok := r.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	cloned := *product

	return &cloned, nil
}

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	if r.err != nil {
		return r.err
	}
	r.nextID++
	product.ID = r.nextID
	product.Approved = false
	product.CreatedAt = time.Now()
	cloned := *product
	r.products[product.ID] = &cloned

	return nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	if r.err != nil {
		return r.err
	}
	existing, ok := r.products[product.ID]
	if !ok {
		return repository.ErrProductNotFound
	}
	existing.Name = product.Name
	existing.Category = product.Category
	existing.Price = product.Price
	existing.Stock = product.Stock
	existing.Image = product.Image

	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id int64) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.products[id]; !ok {
		return repository.ErrProductNotFound
	}
	delete(r.products, id)

	return nil
}

func (r *fakeProductRepo) Approve(_ context.Context, id int64) (*entity.Product, error) {
	if r.err != nil {
		return nil, r.err
	}
	product, ok := r.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	product.Approved = true
	cloned := *product

	return &cloned, nil
}

type fakeUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
	err    error
}

func newFakeUserRepo(seed ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[int64]*entity.User)}
	for _, user := range seed {
		repo.nextID++
		cloned := *user
		cloned.ID = repo.nextID
		repo.users[cloned.ID] = &cloned
	}

	return repo
}

func (r *fakeUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cloned := *user

	return &cloned, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, user := range r.users {
		if user.Email == email {
			cloned := *user

			return &cloned, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if r.err != nil {
		return r.err
	}
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	cloned := *user
	r.users[user.ID] = &cloned

	return nil
}

type fakeOrderRepo struct {
	orders map[int64]*entity.Order
	nextID int64
	err    error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[int64]*entity.Order)}
}

func (r *fakeOrderRepo) List(_ context.Context) ([]*entity.Order, error) {
	if r.err != nil {
		return nil, r.err
	}

	list := make([]*entity.Order, 0, len(r.orders))
	for _, order := range r.orders {
		list = append(list, order)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })

	return list, nil
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id int64) (*entity.Order, error) {
	if r.err != nil {
		return nil, r.err
	}
	order, ok := r.orders[id]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}

	return order, nil
}

func (r *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	if r.err != nil {
		return r.err
	}
	r.nextID++
	order.ID = r.nextID
	order.CreatedAt = time.Now()
	for i, item := range order.Items {
		item.ID = int64(i + 1)
		item.OrderID = order.ID
	}
	r.orders[order.ID] = order

	return nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id int64, status entity.OrderStatus) error {
	if r.err != nil {
		return r.err
	}
	order, ok := r.orders[id]
	if !ok {
		return repository.ErrOrderNotFound
	}
	order.Status = status

	return nil
}

type fakeFarmerRepo struct {
	applications []*entity.FarmerApplication
	err          error
}

func (r *fakeFarmerRepo) Create(_ context.Context, application *entity.FarmerApplication) error {
	if r.err != nil {
		return r.err
	}
	application.ID = int64(len(r.applications) + 1)
	application.CreatedAt = time.Now()
	r.applications = append([]*entity.FarmerApplication{application}, r.applications...)

	return nil
}

func (r *fakeFarmerRepo) List(_ context.Context) ([]*entity.FarmerApplication, error) {
	if r.err != nil {
		return nil, r.err
	}

	return r.applications, nil
}

// fakeTxManager hands the same fake repositories to the transactional
// callback, so assertions can inspect them after the call.
type fakeTxManager struct {
	userRepo    *fakeUserRepo
	productRepo *fakeProductRepo
	orderRepo   *fakeOrderRepo
	err         error
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if m.err != nil {
		return m.err
	}

	return fn(m)
}

func (m *fakeTxManager) NewUserRepository() repository.UserRepository       { return m.userRepo }
func (m *fakeTxManager) NewProductRepository() repository.ProductRepository { return m.productRepo }
func (m *fakeTxManager) NewOrderRepository() repository.OrderRepository     { return m.orderRepo }

type fakePublisher struct {
	events []*service.MarketplaceEvent
	err    error
}

func (p *fakePublisher) PublishMarketplaceEvent(_ context.Context, event *service.MarketplaceEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)

	return nil
}

func (p *fakePublisher) Close() error { return nil }

type fakeHasher struct {
	err error
}

func (h *fakeHasher) Hash(password string) (string, error) {
	if h.err != nil {
		return "", h.err
	}

	return "hashed:" + password, nil
}

func (h *fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

type fakeTokenService struct {
	err error
}

func (s *fakeTokenService) GenerateTokens(_ int64, _ entity.Role) (string, string, error) {
	if s.err != nil {
		return "", "", s.err
	}

	return "access-token", "refresh-token", nil
}

func (s *fakeTokenService) ValidateAccessToken(tokenString string) (*service.TokenClaims, error) {
	if tokenString != "access-token" {
		return nil, errors.New("invalid token")
	}

	return &service.TokenClaims{UserID: 1, Role: entity.RolePurchaser}, nil
}

func (s *fakeTokenService) GetRefreshTokenDuration() time.Duration {
	return 7 * 24 * time.Hour
}

type fakeQRCodeService struct {
	err error
}

func (s *fakeQRCodeService) GenerateShareQR(shareURL string) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}

	return []byte("png:" + shareURL), nil
}

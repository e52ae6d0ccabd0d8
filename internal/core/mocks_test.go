package core

import (
	"context"
	"fmt"
	"time"

	"petrolife-backend-go/internal/db"
	"petrolife-backend-go/internal/models"
)

// Function-field fakes so each test overrides only what it exercises.
// Unset lookups behave like empty registries.

type fakeAdminRepo struct {
	getByEmailFn func(ctx context.Context, email string) (*models.Admin, error)
}

func (f *fakeAdminRepo) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	if f.getByEmailFn != nil {
		return f.getByEmailFn(ctx, email)
	}
	return nil, db.ErrNotFound
}

type fakeCompanyRepo struct {
	company      *models.Company
	getByEmailFn func(ctx context.Context, email string) (*models.Company, error)
	updateTxErr  error
	updateTxRuns int
}

func (f *fakeCompanyRepo) GetByEmail(ctx context.Context, email string) (*models.Company, error) {
	if f.getByEmailFn != nil {
		return f.getByEmailFn(ctx, email)
	}
	if f.company != nil && f.company.Email == email {
		return f.company, nil
	}
	return nil, db.ErrNotFound
}

func (f *fakeCompanyRepo) GetByID(ctx context.Context, companyID string) (*models.Company, error) {
	if f.company != nil && f.company.ID == companyID {
		return f.company, nil
	}
	return nil, db.ErrNotFound
}

func (f *fakeCompanyRepo) List(ctx context.Context) ([]*models.Company, error) {
	if f.company == nil {
		return nil, nil
	}
	return []*models.Company{f.company}, nil
}

// UpdateTx mimics the Firestore transaction: mutate runs against a fresh copy
// and the stored document only changes if mutate succeeds.
func (f *fakeCompanyRepo) UpdateTx(ctx context.Context, companyID string, mutate func(*models.Company) error) (*models.Company, error) {
	f.updateTxRuns++
	if f.updateTxErr != nil {
		return nil, f.updateTxErr
	}
	if f.company == nil || f.company.ID != companyID {
		return nil, db.ErrNotFound
	}
	working := *f.company
	if err := mutate(&working); err != nil {
		return nil, err
	}
	*f.company = working
	return &working, nil
}

type fakeDistributorRepo struct {
	getByEmailFn func(ctx context.Context, email string) (*models.Distributor, error)
	distributors []*models.Distributor
}

func (f *fakeDistributorRepo) GetByEmail(ctx context.Context, email string) (*models.Distributor, error) {
	if f.getByEmailFn != nil {
		return f.getByEmailFn(ctx, email)
	}
	return nil, db.ErrNotFound
}

func (f *fakeDistributorRepo) GetByID(ctx context.Context, distributorID string) (*models.Distributor, error) {
	for _, d := range f.distributors {
		if d.ID == distributorID {
			return d, nil
		}
	}
	return nil, db.ErrNotFound
}

func (f *fakeDistributorRepo) List(ctx context.Context) ([]*models.Distributor, error) {
	return f.distributors, nil
}

type fakePlanRepo struct {
	plans map[string]*models.SubscriptionPlan
}

func (f *fakePlanRepo) Create(ctx context.Context, plan *models.SubscriptionPlan) (string, error) {
	id := fmt.Sprintf("plan-%d", len(f.plans)+1)
	if f.plans == nil {
		f.plans = map[string]*models.SubscriptionPlan{}
	}
	plan.ID = id
	f.plans[id] = plan
	return id, nil
}

func (f *fakePlanRepo) GetByID(ctx context.Context, planID string) (*models.SubscriptionPlan, error) {
	if p, ok := f.plans[planID]; ok {
		return p, nil
	}
	return nil, db.ErrNotFound
}

func (f *fakePlanRepo) List(ctx context.Context) ([]*models.SubscriptionPlan, error) {
	out := make([]*models.SubscriptionPlan, 0, len(f.plans))
	for _, p := range f.plans {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePlanRepo) Update(ctx context.Context, plan *models.SubscriptionPlan) error {
	if _, ok := f.plans[plan.ID]; !ok {
		return db.ErrNotFound
	}
	f.plans[plan.ID] = plan
	return nil
}

func (f *fakePlanRepo) Delete(ctx context.Context, planID string) error {
	if _, ok := f.plans[planID]; !ok {
		return db.ErrNotFound
	}
	delete(f.plans, planID)
	return nil
}

type fakeCouponRepo struct {
	coupons map[string]*models.Coupon // keyed by code
}

func (f *fakeCouponRepo) Create(ctx context.Context, coupon *models.Coupon) (string, error) {
	if f.coupons == nil {
		f.coupons = map[string]*models.Coupon{}
	}
	id := fmt.Sprintf("coupon-%d", len(f.coupons)+1)
	coupon.ID = id
	f.coupons[coupon.Code] = coupon
	return id, nil
}

func (f *fakeCouponRepo) GetByCode(ctx context.Context, code string) (*models.Coupon, error) {
	if c, ok := f.coupons[code]; ok {
		return c, nil
	}
	return nil, db.ErrNotFound
}

func (f *fakeCouponRepo) List(ctx context.Context) ([]*models.Coupon, error) {
	out := make([]*models.Coupon, 0, len(f.coupons))
	for _, c := range f.coupons {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCouponRepo) Delete(ctx context.Context, couponID string) error {
	for code, c := range f.coupons {
		if c.ID == couponID {
			delete(f.coupons, code)
			return nil
		}
	}
	return db.ErrNotFound
}

type fakeCarRepo struct {
	cars    map[string]*models.Car
	nextID  int
	countFn func(ctx context.Context, companyID string) (int, error)
}

func (f *fakeCarRepo) Create(ctx context.Context, car *models.Car) (string, error) {
	if f.cars == nil {
		f.cars = map[string]*models.Car{}
	}
	f.nextID++
	id := fmt.Sprintf("car-%d", f.nextID)
	car.ID = id
	f.cars[id] = car
	return id, nil
}

func (f *fakeCarRepo) GetByID(ctx context.Context, carID string) (*models.Car, error) {
	if c, ok := f.cars[carID]; ok {
		return c, nil
	}
	return nil, db.ErrNotFound
}

func (f *fakeCarRepo) GetByCompanyID(ctx context.Context, companyID string) ([]*models.Car, error) {
	var out []*models.Car
	for _, c := range f.cars {
		if c.CompanyID == companyID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCarRepo) CountByCompanyID(ctx context.Context, companyID string) (int, error) {
	if f.countFn != nil {
		return f.countFn(ctx, companyID)
	}
	count := 0
	for _, c := range f.cars {
		if c.CompanyID == companyID {
			count++
		}
	}
	return count, nil
}

func (f *fakeCarRepo) Update(ctx context.Context, car *models.Car) error {
	if _, ok := f.cars[car.ID]; !ok {
		return db.ErrNotFound
	}
	f.cars[car.ID] = car
	return nil
}

func (f *fakeCarRepo) Delete(ctx context.Context, carID string) error {
	if _, ok := f.cars[carID]; !ok {
		return db.ErrNotFound
	}
	delete(f.cars, carID)
	return nil
}

type fakeStationRepo struct {
	stations map[string]*models.Station
	nextID   int
}

func (f *fakeStationRepo) Create(ctx context.Context, station *models.Station) (string, error) {
	if f.stations == nil {
		f.stations = map[string]*models.Station{}
	}
	f.nextID++
	id := fmt.Sprintf("station-%d", f.nextID)
	station.ID = id
	f.stations[id] = station
	return id, nil
}

func (f *fakeStationRepo) GetByID(ctx context.Context, stationID string) (*models.Station, error) {
	if s, ok := f.stations[stationID]; ok {
		return s, nil
	}
	return nil, db.ErrNotFound
}

func (f *fakeStationRepo) GetByDistributorID(ctx context.Context, distributorID string) ([]*models.Station, error) {
	var out []*models.Station
	for _, s := range f.stations {
		if s.DistributorID == distributorID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStationRepo) List(ctx context.Context) ([]*models.Station, error) {
	out := make([]*models.Station, 0, len(f.stations))
	for _, s := range f.stations {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeStationRepo) Update(ctx context.Context, station *models.Station) error {
	if _, ok := f.stations[station.ID]; !ok {
		return db.ErrNotFound
	}
	f.stations[station.ID] = station
	return nil
}

func (f *fakeStationRepo) Delete(ctx context.Context, stationID string) error {
	if _, ok := f.stations[stationID]; !ok {
		return db.ErrNotFound
	}
	delete(f.stations, stationID)
	return nil
}

type fakeWalletRequestRepo struct {
	requests map[string]*models.WalletRequest
	nextID   int
}

func (f *fakeWalletRequestRepo) Create(ctx context.Context, req *models.WalletRequest) (string, error) {
	if f.requests == nil {
		f.requests = map[string]*models.WalletRequest{}
	}
	f.nextID++
	id := fmt.Sprintf("wr-%d", f.nextID)
	stored := *req
	stored.ID = id
	f.requests[id] = &stored
	return id, nil
}

func (f *fakeWalletRequestRepo) GetByID(ctx context.Context, requestID string) (*models.WalletRequest, error) {
	if r, ok := f.requests[requestID]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, db.ErrNotFound
}

func (f *fakeWalletRequestRepo) GetByCompanyID(ctx context.Context, companyID string) ([]*models.WalletRequest, error) {
	var out []*models.WalletRequest
	for _, r := range f.requests {
		if r.CompanyID == companyID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeWalletRequestRepo) ListPending(ctx context.Context) ([]*models.WalletRequest, error) {
	var out []*models.WalletRequest
	for _, r := range f.requests {
		if r.Status == models.WalletRequestPending {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeWalletRequestRepo) Update(ctx context.Context, req *models.WalletRequest) error {
	if _, ok := f.requests[req.ID]; !ok {
		return db.ErrNotFound
	}
	stored := *req
	f.requests[req.ID] = &stored
	return nil
}

type fakeBankAccountRepo struct {
	accounts []*models.BankAccount
}

func (f *fakeBankAccountRepo) Create(ctx context.Context, account *models.BankAccount) (string, error) {
	id := fmt.Sprintf("ba-%d", len(f.accounts)+1)
	account.ID = id
	f.accounts = append(f.accounts, account)
	return id, nil
}

func (f *fakeBankAccountRepo) GetByID(ctx context.Context, accountID string) (*models.BankAccount, error) {
	for _, a := range f.accounts {
		if a.ID == accountID {
			return a, nil
		}
	}
	return nil, db.ErrNotFound
}

func (f *fakeBankAccountRepo) List(ctx context.Context, onlyActive bool) ([]*models.BankAccount, error) {
	if !onlyActive {
		return f.accounts, nil
	}
	var out []*models.BankAccount
	for _, a := range f.accounts {
		if a.IsActive {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeBankAccountRepo) Update(ctx context.Context, account *models.BankAccount) error {
	for i, a := range f.accounts {
		if a.ID == account.ID {
			f.accounts[i] = account
			return nil
		}
	}
	return db.ErrNotFound
}

func (f *fakeBankAccountRepo) Delete(ctx context.Context, accountID string) error {
	for i, a := range f.accounts {
		if a.ID == accountID {
			f.accounts = append(f.accounts[:i], f.accounts[i+1:]...)
			return nil
		}
	}
	return db.ErrNotFound
}

type fakeTransactionRepo struct {
	created   []*models.Transaction
	createErr error
}

func (f *fakeTransactionRepo) Create(ctx context.Context, txn *models.Transaction) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, txn)
	return nil
}

func (f *fakeTransactionRepo) ListByPeriod(ctx context.Context, from, to time.Time) ([]*models.Transaction, error) {
	var out []*models.Transaction
	for _, t := range f.created {
		if !t.CreatedAt.Before(from) && t.CreatedAt.Before(to) {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeNotificationRepo struct {
	notifications []*models.Notification
}

func (f *fakeNotificationRepo) Create(ctx context.Context, n *models.Notification) error {
	f.notifications = append(f.notifications, n)
	return nil
}

func (f *fakeNotificationRepo) GetByRecipientID(ctx context.Context, recipientID string) ([]*models.Notification, error) {
	var out []*models.Notification
	for _, n := range f.notifications {
		if n.RecipientID == recipientID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) MarkRead(ctx context.Context, notificationID string) error {
	for _, n := range f.notifications {
		if n.ID == notificationID {
			n.Read = true
			return nil
		}
	}
	return db.ErrNotFound
}

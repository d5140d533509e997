package service

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
	"github.com/siamtrans/backoffice-api/internal/domain/entity"
	"github.com/siamtrans/backoffice-api/internal/domain/enum"
	"github.com/siamtrans/backoffice-api/internal/domain/repository"
	"github.com/siamtrans/backoffice-api/pkg/pagination"
)

// In-memory repository fakes. They mimic the persistence contract the
// services rely on: generated IDs on create and nil results for missing rows.

type fakeDocumentRepo struct {
	docs     map[uuid.UUID]*entity.Document
	items    *fakeDocumentItemRepo
	failType *enum.DocumentType // Create fails for documents of this type
}

type fakeDocumentItemRepo struct {
	items map[uuid.UUID][]entity.DocumentItem
}

func newDocumentFakes() (*fakeDocumentRepo, *fakeDocumentItemRepo) {
	itemRepo := &fakeDocumentItemRepo{items: make(map[uuid.UUID][]entity.DocumentItem)}
	docRepo := &fakeDocumentRepo{docs: make(map[uuid.UUID]*entity.Document), items: itemRepo}
	return docRepo, itemRepo
}

func (r *fakeDocumentRepo) Create(ctx context.Context, doc *entity.Document) error {
	if r.failType != nil && doc.Type == *r.failType {
		return errors.New("storage offline")
	}
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	stored := *doc
	r.docs[doc.ID] = &stored
	return nil
}

func (r *fakeDocumentRepo) GetByID(ctx context.Context, docType enum.DocumentType, id uuid.UUID) (*entity.Document, error) {
	doc, ok := r.docs[id]
	if !ok || doc.Type != docType {
		return nil, nil
	}
	clone := *doc
	return &clone, nil
}

func (r *fakeDocumentRepo) GetByDocNumber(ctx context.Context, docType enum.DocumentType, docNumber string) (*entity.Document, error) {
	for _, doc := range r.docs {
		if doc.Type == docType && doc.DocNumber == docNumber {
			clone := *doc
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeDocumentRepo) GetWithItems(ctx context.Context, docType enum.DocumentType, id uuid.UUID) (*entity.Document, error) {
	doc, err := r.GetByID(ctx, docType, id)
	if err != nil || doc == nil {
		return doc, err
	}
	doc.Items, _ = r.items.GetByDocumentID(ctx, id)
	return doc, nil
}

func (r *fakeDocumentRepo) Update(ctx context.Context, doc *entity.Document) error {
	if _, ok := r.docs[doc.ID]; !ok {
		return errors.New("document not found")
	}
	stored := *doc
	r.docs[doc.ID] = &stored
	return nil
}

func (r *fakeDocumentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.DocumentStatus) error {
	doc, ok := r.docs[id]
	if !ok {
		return errors.New("document not found")
	}
	doc.Status = status
	return nil
}

func (r *fakeDocumentRepo) Delete(ctx context.Context, docType enum.DocumentType, id uuid.UUID) error {
	delete(r.docs, id)
	return nil
}

func (r *fakeDocumentRepo) List(ctx context.Context, docType enum.DocumentType, params *repository.DocumentFilterParams) ([]entity.Document, int64, error) {
	var result []entity.Document
	for _, doc := range r.docs {
		if doc.Type != docType {
			continue
		}
		if params.DocNumber != "" && doc.DocNumber != params.DocNumber {
			continue
		}
		if params.Status != nil && doc.Status != *params.Status {
			continue
		}
		result = append(result, *doc)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].DocNumber < result[j].DocNumber })
	return result, int64(len(result)), nil
}

func (r *fakeDocumentRepo) GetNextReferenceNumber(ctx context.Context, docType enum.DocumentType) (int, error) {
	count := 0
	for _, doc := range r.docs {
		if doc.Type == docType {
			count++
		}
	}
	return count + 1, nil
}

func (r *fakeDocumentItemRepo) Create(ctx context.Context, item *entity.DocumentItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.items[item.DocumentID] = append(r.items[item.DocumentID], *item)
	return nil
}

func (r *fakeDocumentItemRepo) CreateBatch(ctx context.Context, items []entity.DocumentItem) error {
	for i := range items {
		if err := r.Create(ctx, &items[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeDocumentItemRepo) GetByDocumentID(ctx context.Context, documentID uuid.UUID) ([]entity.DocumentItem, error) {
	items := append([]entity.DocumentItem(nil), r.items[documentID]...)
	sort.Slice(items, func(i, j int) bool { return items[i].Position < items[j].Position })
	return items, nil
}

func (r *fakeDocumentItemRepo) DeleteByDocumentID(ctx context.Context, documentID uuid.UUID) error {
	delete(r.items, documentID)
	return nil
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
}

func (r *fakeCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	stored := *customer
	r.customers[customer.ID] = &stored
	return nil
}

func (r *fakeCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	clone := *customer
	return &clone, nil
}

func (r *fakeCustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	stored := *customer
	r.customers[customer.ID] = &stored
	return nil
}

func (r *fakeCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.customers, id)
	return nil
}

func (r *fakeCustomerRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	var result []entity.Customer
	for _, customer := range r.customers {
		result = append(result, *customer)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, int64(len(result)), nil
}

type fakeCompanyRepo struct {
	info *entity.CompanyInfo
}

func (r *fakeCompanyRepo) Get(ctx context.Context) (*entity.CompanyInfo, error) {
	return r.info, nil
}

func (r *fakeCompanyRepo) Save(ctx context.Context, info *entity.CompanyInfo) error {
	r.info = info
	return nil
}

type fakeDriverRepo struct {
	drivers map[uuid.UUID]*entity.Driver
}

func newFakeDriverRepo() *fakeDriverRepo {
	return &fakeDriverRepo{drivers: make(map[uuid.UUID]*entity.Driver)}
}

func (r *fakeDriverRepo) Create(ctx context.Context, driver *entity.Driver) error {
	if driver.ID == uuid.Nil {
		driver.ID = uuid.New()
	}
	stored := *driver
	r.drivers[driver.ID] = &stored
	return nil
}

func (r *fakeDriverRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Driver, error) {
	driver, ok := r.drivers[id]
	if !ok {
		return nil, nil
	}
	clone := *driver
	return &clone, nil
}

func (r *fakeDriverRepo) Update(ctx context.Context, driver *entity.Driver) error {
	stored := *driver
	r.drivers[driver.ID] = &stored
	return nil
}

func (r *fakeDriverRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.drivers, id)
	return nil
}

func (r *fakeDriverRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Driver, int64, error) {
	var result []entity.Driver
	for _, driver := range r.drivers {
		result = append(result, *driver)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, int64(len(result)), nil
}

type fakeVoucherRepo struct {
	vouchers map[uuid.UUID]*entity.PaymentVoucher
	items    *fakeVoucherItemRepo
}

type fakeVoucherItemRepo struct {
	items map[uuid.UUID][]entity.PaymentVoucherItem
}

func newVoucherFakes() (*fakeVoucherRepo, *fakeVoucherItemRepo) {
	itemRepo := &fakeVoucherItemRepo{items: make(map[uuid.UUID][]entity.PaymentVoucherItem)}
	voucherRepo := &fakeVoucherRepo{vouchers: make(map[uuid.UUID]*entity.PaymentVoucher), items: itemRepo}
	return voucherRepo, itemRepo
}

func (r *fakeVoucherRepo) Create(ctx context.Context, voucher *entity.PaymentVoucher) error {
	if voucher.ID == uuid.Nil {
		voucher.ID = uuid.New()
	}
	stored := *voucher
	r.vouchers[voucher.ID] = &stored
	return nil
}

func (r *fakeVoucherRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.PaymentVoucher, error) {
	voucher, ok := r.vouchers[id]
	if !ok {
		return nil, nil
	}
	clone := *voucher
	return &clone, nil
}

func (r *fakeVoucherRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.PaymentVoucher, error) {
	voucher, err := r.GetByID(ctx, id)
	if err != nil || voucher == nil {
		return voucher, err
	}
	voucher.Items, _ = r.items.GetByVoucherID(ctx, id)
	return voucher, nil
}

func (r *fakeVoucherRepo) Update(ctx context.Context, voucher *entity.PaymentVoucher) error {
	stored := *voucher
	r.vouchers[voucher.ID] = &stored
	return nil
}

func (r *fakeVoucherRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.vouchers, id)
	return nil
}

func (r *fakeVoucherRepo) List(ctx context.Context, params *repository.VoucherFilterParams) ([]entity.PaymentVoucher, int64, error) {
	var result []entity.PaymentVoucher
	for _, voucher := range r.vouchers {
		if params.DriverID != nil && (voucher.DriverID == nil || *voucher.DriverID != *params.DriverID) {
			continue
		}
		result = append(result, *voucher)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].VoucherNumber < result[j].VoucherNumber })
	return result, int64(len(result)), nil
}

func (r *fakeVoucherRepo) GetNextReferenceNumber(ctx context.Context) (int, error) {
	return len(r.vouchers) + 1, nil
}

func (r *fakeVoucherItemRepo) Create(ctx context.Context, item *entity.PaymentVoucherItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.items[item.VoucherID] = append(r.items[item.VoucherID], *item)
	return nil
}

func (r *fakeVoucherItemRepo) CreateBatch(ctx context.Context, items []entity.PaymentVoucherItem) error {
	for i := range items {
		if err := r.Create(ctx, &items[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeVoucherItemRepo) GetByVoucherID(ctx context.Context, voucherID uuid.UUID) ([]entity.PaymentVoucherItem, error) {
	items := append([]entity.PaymentVoucherItem(nil), r.items[voucherID]...)
	sort.Slice(items, func(i, j int) bool { return items[i].Position < items[j].Position })
	return items, nil
}

func (r *fakeVoucherItemRepo) DeleteByVoucherID(ctx context.Context, voucherID uuid.UUID) error {
	delete(r.items, voucherID)
	return nil
}

package sales

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-sfm/internal/product"
	saleserrors "go-sfm/internal/sales/errors"
	"go-sfm/internal/shared/counter"
	"go-sfm/internal/shared/dateutil"
	"go-sfm/internal/team"
	"go-sfm/internal/user"
)

// ProductSource resolves products at record time so the unit price can be
// captured onto the sale item.
type ProductSource interface {
	FindByID(ctx context.Context, id string) (*product.Product, error)
}

// TeamChecker confirms a team belongs to the requesting manager.
type TeamChecker interface {
	FindByIDAndManager(ctx context.Context, managerID, id string) (*team.Team, error)
}

//go:generate mockgen -source=sales_service.go -destination=mock/sales_service_mock.go -package=mock
type Service interface {
	Record(ctx context.Context, executiveID string, req RecordSaleRequest) (SaleResponse, error)
	MySales(ctx context.Context, executiveID string, filter SalesFilterRequest) ([]SaleResponse, error)
	TeamSales(ctx context.Context, managerID string, filter TeamSalesFilterRequest) ([]SaleResponse, error)
	// SumForExecutiveBetween totals sale amounts across [start, end] inclusive.
	SumForExecutiveBetween(ctx context.Context, executiveID string, start, end time.Time) (float64, error)
}

type service struct {
	repo     Repository
	userRepo user.Repository
	products ProductSource
	teams    TeamChecker
	counter  counter.Repository
	logger   *zap.Logger
}

func NewService(
	repo Repository,
	userRepo user.Repository,
	products ProductSource,
	teams TeamChecker,
	counterRepo counter.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("sales.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("sales.service")
	}
	return &service{
		repo:     repo,
		userRepo: userRepo,
		products: products,
		teams:    teams,
		counter:  counterRepo,
		logger:   l,
	}
}

func (s *service) Record(ctx context.Context, executiveID string, req RecordSaleRequest) (SaleResponse, error) {
	if len(req.Items) == 0 {
		return SaleResponse{}, saleserrors.ErrEmptyItems
	}
	if strings.TrimSpace(req.Location) == "" {
		return SaleResponse{}, saleserrors.ErrMissingLocation
	}
	day, err := dateutil.ParseDay(req.Date)
	if err != nil {
		return SaleResponse{}, saleserrors.ErrInvalidDate
	}

	executive, err := s.userRepo.FindByID(ctx, executiveID)
	if err != nil {
		s.logger.Error("record sale load executive failed", zap.String("executive_id", executiveID), zap.Error(err))
		return SaleResponse{}, err
	}
	if executive.ManagerID == nil {
		return SaleResponse{}, saleserrors.ErrSaleNotFound
	}

	saleID := uuid.New()
	var (
		amount float64
		items  []SaleItem
	)
	for _, it := range req.Items {
		p, err := s.products.FindByID(ctx, it.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return SaleResponse{}, saleserrors.ErrUnknownProduct
			}
			return SaleResponse{}, err
		}
		amount += float64(it.Quantity) * p.Price
		items = append(items, SaleItem{
			ID:           uuid.New(),
			SaleID:       saleID,
			ProductID:    p.ID,
			Quantity:     it.Quantity,
			PricePerUnit: p.Price,
		})
	}

	nextVal, err := s.counter.GetNextValue(ctx, executive.ManagerID.String(), "sale_receipt")
	if err != nil {
		s.logger.Error("record sale generate receipt failed", zap.Error(err))
		return SaleResponse{}, err
	}

	sale := &Sale{
		ID:          saleID,
		ReceiptNo:   fmt.Sprintf("SLS-%06d", nextVal),
		ExecutiveID: executive.ID,
		ManagerID:   *executive.ManagerID,
		SaleDate:    day,
		Amount:      amount,
		Location:    req.Location,
		Remarks:     req.Remarks,
		Items:       items,
	}
	if err := s.repo.Create(ctx, sale); err != nil {
		s.logger.Error("record sale persist failed", zap.String("executive_id", executiveID), zap.Error(err))
		return SaleResponse{}, err
	}

	s.logger.Info("sale recorded",
		zap.String("sale_id", sale.ID.String()),
		zap.String("receipt_no", sale.ReceiptNo),
		zap.String("executive_id", executiveID),
		zap.Float64("amount", amount),
	)
	return mapToResponse(*sale), nil
}

func (s *service) MySales(ctx context.Context, executiveID string, filter SalesFilterRequest) ([]SaleResponse, error) {
	start, end, err := resolveWindow(filter.Date, filter.Year, filter.Month)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FindByExecutiveBetween(ctx, executiveID, start, end)
	if err != nil {
		s.logger.Error("my sales failed", zap.String("executive_id", executiveID), zap.Error(err))
		return nil, err
	}

	out := make([]SaleResponse, 0, len(rows))
	for _, sale := range rows {
		out = append(out, mapToResponse(sale))
	}
	return out, nil
}

func (s *service) TeamSales(ctx context.Context, managerID string, filter TeamSalesFilterRequest) ([]SaleResponse, error) {
	start, end, err := resolveWindow(filter.Date, filter.Year, filter.Month)
	if err != nil {
		return nil, err
	}

	var teamID *string
	if filter.TeamID != "" {
		// A manager can only narrow to a team they own.
		if _, err := s.teams.FindByIDAndManager(ctx, managerID, filter.TeamID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, saleserrors.ErrTeamNotManaged
			}
			return nil, err
		}
		teamID = &filter.TeamID
	}

	rows, err := s.repo.FindByManagerBetween(ctx, managerID, teamID, start, end)
	if err != nil {
		s.logger.Error("team sales failed", zap.String("manager_id", managerID), zap.Error(err))
		return nil, err
	}

	out := make([]SaleResponse, 0, len(rows))
	for _, sale := range rows {
		resp := mapToResponse(sale.Sale)
		resp.ExecutiveName = sale.ExecutiveName
		out = append(out, resp)
	}
	return out, nil
}

func (s *service) SumForExecutiveBetween(ctx context.Context, executiveID string, start, end time.Time) (float64, error) {
	return s.repo.SumAmountBetween(ctx, executiveID, dateutil.Day(start), dateutil.Day(end).AddDate(0, 0, 1))
}

// resolveWindow maps the three filter shapes to a half-open [start, end)
// interval: a single day, a month, or everything.
func resolveWindow(date string, year, month int) (time.Time, time.Time, error) {
	if date != "" {
		day, err := dateutil.ParseDay(date)
		if err != nil {
			return time.Time{}, time.Time{}, saleserrors.ErrInvalidDate
		}
		return day, day.AddDate(0, 0, 1), nil
	}
	if year != 0 && month != 0 {
		start, end := dateutil.MonthBounds(year, month)
		return start, end, nil
	}
	// No filter: unbounded range.
	return time.Time{}, time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC), nil
}

func mapToResponse(s Sale) SaleResponse {
	items := make([]SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, SaleItemResponse{
			ProductID:    it.ProductID.String(),
			Quantity:     it.Quantity,
			PricePerUnit: it.PricePerUnit,
			Subtotal:     float64(it.Quantity) * it.PricePerUnit,
		})
	}
	return SaleResponse{
		ID:          s.ID.String(),
		ReceiptNo:   s.ReceiptNo,
		ExecutiveID: s.ExecutiveID.String(),
		Date:        s.SaleDate.Format(dateutil.DayFormat),
		Amount:      s.Amount,
		Location:    s.Location,
		Remarks:     s.Remarks,
		Items:       items,
	}
}

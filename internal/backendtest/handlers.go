package backendtest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"finance-tracker/internal/dto"
	apperrors "finance-tracker/internal/errors"
	"finance-tracker/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const spreadsheetContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (s *Server) registerRoutes(g *echo.Group) {
	g.GET("/categories", s.listCategories)
	g.POST("/categories", s.createCategory)
	g.DELETE("/categories/:id", s.deleteCategory)

	g.GET("/transactions", s.listTransactions)
	g.POST("/transactions", s.createTransaction)
	g.PUT("/transactions/:id", s.updateTransaction)
	g.DELETE("/transactions/:id", s.deleteTransaction)

	g.GET("/goals", s.listGoals)
	g.POST("/goals", s.createGoal)
	g.PUT("/goals/:id/progress", s.addGoalProgress)
	g.DELETE("/goals/:id", s.deleteGoal)

	g.GET("/investments", s.listInvestments)
	g.POST("/investments", s.createInvestment)
	g.PUT("/investments/:id", s.updateInvestment)
	g.DELETE("/investments/:id", s.deleteInvestment)

	g.GET("/reports/download-report", s.downloadReport)
}

func bindValid(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return codeError(apperrors.ValidationInvalidFormat, err.Error())
	}
	return c.Validate(req)
}

// nextID must be called with s.mu held.
func (s *Server) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%d", prefix, s.seq)
}

func (s *Server) listCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, s.Categories())
}

func (s *Server) createCategory(c echo.Context) error {
	var req dto.CreateCategoryRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := dto.CategoryResponse{
		ID:    s.nextID("cat"),
		Name:  strings.TrimSpace(req.Name),
		Type:  strings.ToUpper(req.Type),
		Color: req.Color,
		Icon:  req.Icon,
	}
	s.categories = append(s.categories, item)

	return c.JSON(http.StatusCreated, item)
}

func (s *Server) deleteCategory(c echo.Context) error {
	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.categories, func(cat dto.CategoryResponse) bool { return cat.ID == id })
	if i < 0 {
		return codeError(apperrors.CategoryNotFound)
	}
	if s.categories[i].IsDefault {
		return codeError(apperrors.CategoryDefaultLocked)
	}
	if slices.ContainsFunc(s.transactions, func(t dto.TransactionResponse) bool { return t.CategoryID == id }) {
		return codeError(apperrors.CategoryInUse)
	}

	s.categories = slices.Delete(s.categories, i, i+1)
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) listTransactions(c echo.Context) error {
	return c.JSON(http.StatusOK, s.Transactions())
}

func (s *Server) createTransaction(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if req.CategoryID != "" && !s.hasCategory(req.CategoryID) {
		return codeError(apperrors.CategoryNotFound)
	}

	amount, err := requestAmount(req.Amount)
	if err != nil {
		return err
	}

	now := s.now().UTC()
	item := dto.TransactionResponse{
		ID:          s.nextID("tx"),
		Type:        strings.ToUpper(req.Type),
		Amount:      amount,
		Description: req.Description,
		Date:        req.Date,
		CategoryID:  req.CategoryID,
		Tags:        req.Tags,
		CreatedAt:   &now,
		UpdatedAt:   &now,
	}
	s.transactions = append(s.transactions, item)

	return c.JSON(http.StatusCreated, item)
}

func (s *Server) updateTransaction(c echo.Context) error {
	var req dto.UpdateTransactionRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	if req.IsEmpty() {
		return codeError(apperrors.ValidationGeneral, "no fields to update")
	}

	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.transactions, func(t dto.TransactionResponse) bool { return t.ID == id })
	if i < 0 {
		return codeError(apperrors.TransactionNotFound)
	}

	item := s.transactions[i]
	if req.Type != nil {
		item.Type = strings.ToUpper(*req.Type)
	}
	if req.Amount != nil {
		amount, err := requestAmount(*req.Amount)
		if err != nil {
			return err
		}
		item.Amount = amount
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Date != nil {
		item.Date = *req.Date
	}
	if req.CategoryID != nil {
		if *req.CategoryID != "" && !s.hasCategory(*req.CategoryID) {
			return codeError(apperrors.CategoryNotFound)
		}
		item.CategoryID = *req.CategoryID
		item.Category = nil
	}
	if req.Tags != nil {
		item.Tags = req.Tags
	}
	now := s.now().UTC()
	item.UpdatedAt = &now
	s.transactions[i] = item

	return c.JSON(http.StatusOK, item)
}

func (s *Server) deleteTransaction(c echo.Context) error {
	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.transactions, func(t dto.TransactionResponse) bool { return t.ID == id })
	if i < 0 {
		return codeError(apperrors.TransactionNotFound)
	}
	s.transactions = slices.Delete(s.transactions, i, i+1)
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) listGoals(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, s.goals)
}

func (s *Server) createGoal(c echo.Context) error {
	var req dto.CreateGoalRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	target, err := requestAmount(req.TargetAmount)
	if err != nil {
		return err
	}
	current := decimal.Zero
	if req.CurrentAmount != "" {
		if current, err = requestAmount(req.CurrentAmount); err != nil {
			return err
		}
	}

	priority := strings.ToUpper(req.Priority)
	if priority == "" {
		priority = string(models.GoalPriorityMedium)
	}

	item := dto.GoalResponse{
		ID:            s.nextID("goal"),
		Title:         req.Title,
		Description:   req.Description,
		TargetAmount:  target,
		CurrentAmount: current,
		TargetDate:    req.TargetDate,
		Status:        string(models.GoalStatusActive),
		Priority:      priority,
		CategoryID:    req.CategoryID,
	}
	completeIfReached(&item)
	s.goals = append(s.goals, item)

	return c.JSON(http.StatusCreated, item)
}

func (s *Server) addGoalProgress(c echo.Context) error {
	var req dto.GoalProgressRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	amount, err := requestAmount(req.Amount)
	if err != nil {
		return err
	}

	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.goals, func(g dto.GoalResponse) bool { return g.ID == id })
	if i < 0 {
		return codeError(apperrors.GoalNotFound)
	}

	s.goals[i].CurrentAmount = s.goals[i].CurrentAmount.Add(amount)
	completeIfReached(&s.goals[i])

	return c.JSON(http.StatusOK, s.goals[i])
}

func completeIfReached(g *dto.GoalResponse) {
	if g.Status == string(models.GoalStatusActive) && !g.CurrentAmount.LessThan(g.TargetAmount) {
		g.Status = string(models.GoalStatusCompleted)
	}
}

func (s *Server) deleteGoal(c echo.Context) error {
	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.goals, func(g dto.GoalResponse) bool { return g.ID == id })
	if i < 0 {
		return codeError(apperrors.GoalNotFound)
	}
	s.goals = slices.Delete(s.goals, i, i+1)
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) listInvestments(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, s.investments)
}

func (s *Server) createInvestment(c echo.Context) error {
	var req dto.CreateInvestmentRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	amount, err := requestAmount(req.Amount)
	if err != nil {
		return err
	}
	quantity, err := optionalAmount(req.Quantity)
	if err != nil {
		return err
	}
	unitPrice, err := optionalAmount(req.UnitPrice)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := dto.InvestmentResponse{
		ID:           s.nextID("inv"),
		Name:         req.Name,
		Type:         strings.ToUpper(req.Type),
		Amount:       amount,
		Quantity:     quantity,
		UnitPrice:    unitPrice,
		PurchaseDate: req.PurchaseDate,
		Broker:       req.Broker,
		Notes:        req.Notes,
	}
	s.investments = append(s.investments, item)

	return c.JSON(http.StatusCreated, item)
}

func (s *Server) updateInvestment(c echo.Context) error {
	var req dto.UpdateInvestmentRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.investments, func(inv dto.InvestmentResponse) bool { return inv.ID == id })
	if i < 0 {
		return codeError(apperrors.InvestmentNotFound)
	}

	item := s.investments[i]
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Type != nil {
		item.Type = strings.ToUpper(*req.Type)
	}
	if req.Amount != nil {
		amount, err := requestAmount(*req.Amount)
		if err != nil {
			return err
		}
		item.Amount = amount
	}
	if req.Quantity != nil {
		quantity, err := optionalAmount(req.Quantity)
		if err != nil {
			return err
		}
		item.Quantity = quantity
	}
	if req.UnitPrice != nil {
		unitPrice, err := optionalAmount(req.UnitPrice)
		if err != nil {
			return err
		}
		item.UnitPrice = unitPrice
	}
	if req.PurchaseDate != nil {
		item.PurchaseDate = *req.PurchaseDate
	}
	if req.Broker != nil {
		item.Broker = *req.Broker
	}
	if req.Notes != nil {
		item.Notes = *req.Notes
	}
	s.investments[i] = item

	return c.JSON(http.StatusOK, item)
}

func (s *Server) deleteInvestment(c echo.Context) error {
	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.investments, func(inv dto.InvestmentResponse) bool { return inv.ID == id })
	if i < 0 {
		return codeError(apperrors.InvestmentNotFound)
	}
	s.investments = slices.Delete(s.investments, i, i+1)
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) downloadReport(c echo.Context) error {
	var query dto.ReportQuery
	if err := c.Bind(&query); err != nil {
		return codeError(apperrors.ValidationInvalidFormat, err.Error())
	}

	from, fromErr := models.ParseCalendarDate(query.DateFrom)
	to, toErr := models.ParseCalendarDate(query.DateTo)
	if query.Period == "" || fromErr != nil || toErr != nil || from.After(to) {
		return codeError(apperrors.ReportInvalidPeriod)
	}

	s.mu.Lock()
	s.exports = append(s.exports, query)
	s.mu.Unlock()

	name := s.exportName
	if name == "" {
		name = dto.ReportFileName(s.now())
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Blob(http.StatusOK, spreadsheetContentType, s.export)
}

// hasCategory must be called with s.mu held.
func (s *Server) hasCategory(id string) bool {
	return slices.ContainsFunc(s.categories, func(cat dto.CategoryResponse) bool { return cat.ID == id })
}

func requestAmount(n json.Number) (decimal.Decimal, error) {
	amount, err := dto.ParseAmount(n)
	if err != nil {
		return decimal.Zero, codeError(apperrors.ValidationInvalidFormat, err.Error())
	}
	return amount, nil
}

func optionalAmount(n *json.Number) (*decimal.Decimal, error) {
	amount, err := dto.ParseOptionalAmount(n)
	if err != nil {
		return nil, codeError(apperrors.ValidationInvalidFormat, err.Error())
	}
	return amount, nil
}

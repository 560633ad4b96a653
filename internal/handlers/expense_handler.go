package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/asalzp/ExpenseEase/config"
	"github.com/asalzp/ExpenseEase/models"
)

// amountString accepts the amount field as either a JSON number or a string,
// keeping the raw text so precision rules can be checked before conversion.
type amountString string

func (a *amountString) UnmarshalJSON(b []byte) error {
	*a = amountString(strings.Trim(string(b), `"`))
	return nil
}

// ExpenseInput is the payload for creating or partially updating an expense.
// Pointer fields distinguish "absent" from "set to zero value".
type ExpenseInput struct {
	Category    *string       `json:"category"`
	Amount      *amountString `json:"amount"`
	Date        *string       `json:"date"`
	Description *string       `json:"description"`
}

// validate checks the supplied fields and, when requireAll is set, demands
// category, amount and date. Returns per-field error messages keyed like the
// input payload.
func (in ExpenseInput) validate(requireAll bool) map[string][]string {
	errs := make(map[string][]string)

	if in.Category == nil {
		if requireAll {
			errs["category"] = append(errs["category"], "This field is required.")
		}
	} else if len(*in.Category) > 50 {
		errs["category"] = append(errs["category"], "Ensure this field has no more than 50 characters.")
	}

	if in.Amount == nil {
		if requireAll {
			errs["amount"] = append(errs["amount"], "This field is required.")
		}
	} else if msg := validateAmount(string(*in.Amount)); msg != "" {
		errs["amount"] = append(errs["amount"], msg)
	}

	if in.Date == nil {
		if requireAll {
			errs["date"] = append(errs["date"], "This field is required.")
		}
	} else if _, err := models.ParseDate(*in.Date); err != nil {
		errs["date"] = append(errs["date"], "Date has wrong format. Use one of these formats instead: YYYY-MM-DD.")
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// validateAmount enforces the numeric(10,2) contract: a plain decimal with
// at most 10 digits in total and at most 2 after the point.
func validateAmount(s string) string {
	digits := strings.TrimPrefix(s, "-")
	whole, frac, hasFrac := strings.Cut(digits, ".")
	if whole == "" && frac == "" {
		return "A valid number is required."
	}
	for _, r := range whole + frac {
		if r < '0' || r > '9' {
			return "A valid number is required."
		}
	}
	if hasFrac && len(frac) > 2 {
		return "Ensure that there are no more than 2 decimal places."
	}
	if len(whole)+len(frac) > 10 {
		return "Ensure that there are no more than 10 digits in total."
	}
	return ""
}

// apply copies the supplied fields onto the expense. Call only after
// validate, so the conversions cannot fail.
func (in ExpenseInput) apply(expense *models.Expense) {
	if in.Category != nil {
		expense.Category = *in.Category
	}
	if in.Amount != nil {
		amount, _ := strconv.ParseFloat(string(*in.Amount), 64)
		expense.Amount = amount
	}
	if in.Date != nil {
		date, _ := models.ParseDate(*in.Date)
		expense.Date = date
	}
	if in.Description != nil {
		expense.Description = *in.Description
	}
}

// ListExpensesHandler returns the authenticated user's expenses, with
// optional exact-match category/date filters and date/amount ordering.
func ListExpensesHandler(c *gin.Context) {
	query := config.DB.Where("user_id = ?", currentUserID(c))

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if dateStr := c.Query("date"); dateStr != "" {
		date, err := models.ParseDate(dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"date": []string{"Date has wrong format. Use one of these formats instead: YYYY-MM-DD."}})
			return
		}
		query = query.Where("date = ?", date)
	}

	// Unrecognized ordering values fall through to insertion order.
	switch c.Query("ordering") {
	case "date":
		query = query.Order("date asc")
	case "-date":
		query = query.Order("date desc")
	case "amount":
		query = query.Order("amount asc")
	case "-amount":
		query = query.Order("amount desc")
	}

	var expenses []models.Expense
	if err := query.Find(&expenses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch expenses"})
		return
	}
	if expenses == nil {
		expenses = make([]models.Expense, 0)
	}
	c.JSON(http.StatusOK, expenses)
}

// CreateExpenseHandler records a new expense owned by the authenticated user.
func CreateExpenseHandler(c *gin.Context) {
	var input ExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errs := input.validate(true); errs != nil {
		c.JSON(http.StatusBadRequest, errs)
		return
	}

	expense := models.Expense{UserID: currentUserID(c)}
	input.apply(&expense)
	if err := config.DB.Create(&expense).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create expense"})
		return
	}
	c.JSON(http.StatusCreated, expense)
}

// expenseID parses the :id path parameter. Non-numeric ids are treated the
// same as absent records.
func expenseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
		return 0, false
	}
	return uint(id), true
}

// GetExpenseHandler fetches one expense. The lookup matches id and owner in
// a single query so other users' expenses are indistinguishable from absent
// ones.
func GetExpenseHandler(c *gin.Context) {
	id, ok := expenseID(c)
	if !ok {
		return
	}
	var expense models.Expense
	err := config.DB.Where("id = ? AND user_id = ?", id, currentUserID(c)).First(&expense).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
		return
	}
	c.JSON(http.StatusOK, expense)
}

// UpdateExpenseHandler merges the supplied fields into an owned expense.
// Validation failures reject the whole update.
func UpdateExpenseHandler(c *gin.Context) {
	id, ok := expenseID(c)
	if !ok {
		return
	}
	var expense models.Expense
	err := config.DB.Where("id = ? AND user_id = ?", id, currentUserID(c)).First(&expense).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
		return
	}

	var input ExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errs := input.validate(false); errs != nil {
		c.JSON(http.StatusBadRequest, errs)
		return
	}

	input.apply(&expense)
	if err := config.DB.Save(&expense).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update expense"})
		return
	}
	c.JSON(http.StatusOK, expense)
}

// DeleteExpenseHandler removes an owned expense.
func DeleteExpenseHandler(c *gin.Context) {
	id, ok := expenseID(c)
	if !ok {
		return
	}
	result := config.DB.Where("id = ? AND user_id = ?", id, currentUserID(c)).Delete(&models.Expense{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete expense"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

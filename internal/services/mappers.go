package services

import (
	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/stats"
)

func toUserProfile(user *models.User) dto.UserProfileResponse {
	return dto.UserProfileResponse{
		ID:         user.ID.String(),
		Name:       user.Name,
		Email:      user.Email,
		AvatarURL:  user.AvatarURL,
		Currency:   user.Currency,
		DateFormat: user.DateFormat,
		Theme:      user.Theme,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}

func toTransactionResponse(tx *models.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:            tx.ID,
		Description:   tx.Description,
		Amount:        tx.Amount.String(),
		Type:          tx.Type,
		Category:      tx.CategoryLabel(),
		CategoryID:    tx.CategoryID,
		CategoryColor: tx.Category.Color,
		CategoryIcon:  tx.Category.Icon,
		Date:          tx.DateString(),
		CreatedAt:     tx.CreatedAt,
		UpdatedAt:     tx.UpdatedAt,
	}
}

func toTransactionResponses(txs []models.Transaction) []dto.TransactionResponse {
	responses := make([]dto.TransactionResponse, len(txs))
	for i := range txs {
		responses[i] = toTransactionResponse(&txs[i])
	}
	return responses
}

func toCategoryResponse(category *models.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		Type:      category.Type,
		Color:     category.Color,
		Icon:      category.Icon,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

func toSettingsResponse(settings *models.UserSettings) dto.SettingsResponse {
	return dto.SettingsResponse{
		MonthlyLimit:   settings.MonthlyLimit.String(),
		DailyLimit:     settings.DailyLimit.String(),
		AlertThreshold: settings.AlertThreshold,
		ItemsPerPage:   settings.ItemsPerPage,
		Notifications:  settings.Notifications,
		AutoSave:       settings.AutoSave,
	}
}

func toStatsResponse(summary stats.Summary) dto.TransactionStatsResponse {
	categories := make(map[string]dto.CategoryBreakdown, len(summary.Categories))
	for name, breakdown := range summary.Categories {
		categories[name] = dto.CategoryBreakdown{
			Income:  breakdown.Income.String(),
			Expense: breakdown.Expense.String(),
			Total:   breakdown.Total.String(),
		}
	}

	return dto.TransactionStatsResponse{
		TotalIncome:      summary.TotalIncome.String(),
		TotalExpense:     summary.TotalExpense.String(),
		Balance:          summary.Balance.String(),
		TransactionCount: summary.TransactionCount,
		Categories:       categories,
	}
}

func toBucketResponses(buckets []stats.Bucket) []dto.BucketResponse {
	responses := make([]dto.BucketResponse, len(buckets))
	for i, bucket := range buckets {
		responses[i] = dto.BucketResponse{
			Label:   bucket.Label,
			Income:  bucket.Income.String(),
			Expense: bucket.Expense.String(),
		}
	}
	return responses
}

func toCategoryTotalResponses(totals []stats.CategoryTotal) []dto.CategoryTotalResponse {
	responses := make([]dto.CategoryTotalResponse, len(totals))
	for i, total := range totals {
		responses[i] = dto.CategoryTotalResponse{
			Category: total.Category,
			Total:    total.Amount.String(),
		}
	}
	return responses
}

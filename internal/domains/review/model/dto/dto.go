package dto

import (
	"strings"
	"time"

	"ecoparking/internal/domains/report"
	"ecoparking/internal/domains/review/model"
	"ecoparking/shared"
	"ecoparking/shared/constant"
	gModel "ecoparking/shared/model"
	"ecoparking/shared/timezone"

	"github.com/shopspring/decimal"
)

type SaveRequest struct {
	Space    string `json:"space"     validate:"required,max=50"`
	UserName string `json:"user_name" validate:"required,max=100"`
	Rating   int    `json:"rating"    validate:"required,min=1,max=5"`
	Comment  string `json:"comment"   validate:"max=500"`
}

func (r *SaveRequest) Normalize() {
	r.Space = strings.TrimSpace(r.Space)
	r.UserName = strings.TrimSpace(r.UserName)
	r.Comment = strings.TrimSpace(r.Comment)
}

func (r *SaveRequest) ToModel(actor string, at time.Time) model.Review {
	return model.Review{
		Space:      r.Space,
		UserName:   r.UserName,
		Rating:     r.Rating,
		Comment:    r.Comment,
		ReviewedAt: at,
		Metadata:   gModel.NewMetadata(actor),
	}
}

type ReviewResponse struct {
	ID         int64  `json:"id"`
	Space      string `json:"space"`
	UserName   string `json:"user_name"`
	Rating     int    `json:"rating"`
	Stars      string `json:"stars"`
	Comment    string `json:"comment"`
	ReviewedAt string `json:"reviewed_at"`
}

func (r *ReviewResponse) FromModel(m model.Review) {
	r.ID = m.ID
	r.Space = m.Space
	r.UserName = m.UserName
	r.Rating = m.Rating
	r.Stars = Stars(m.Rating)
	r.Comment = m.Comment
	r.ReviewedAt = timezone.Format(m.ReviewedAt, constant.DisplayFormat)
}

// Stars draws a rating as filled and empty stars out of five.
func Stars(rating int) string {
	rating = min(max(rating, 0), 5)

	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

type GetReviewsResponse struct {
	Reviews   []ReviewResponse `json:"reviews"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetReviewsResponse) FromModels(models []model.Review, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reviews = make([]ReviewResponse, len(models))
	for i, m := range models {
		r.Reviews[i].FromModel(m)
	}
}

type AverageResponse struct {
	Space   string          `json:"space"`
	Average decimal.Decimal `json:"average"`
	Count   int             `json:"count"`
}

func ToRatings(models []model.Review) []report.Rating {
	res := make([]report.Rating, len(models))
	for i, m := range models {
		res[i] = report.Rating{Space: m.Space, Rating: m.Rating}
	}

	return res
}

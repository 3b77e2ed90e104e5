package console

import (
	"context"

	"ecoparking/internal/domains/report"
	reviewDto "ecoparking/internal/domains/review/model/dto"
	gDto "ecoparking/shared/dto"
)

func (c *Console) reviewMenu(ctx context.Context, p *prompt) error {
	for {
		p.menu("Reviews", "Leave a review", "All reviews", "Reviews by space", "Average by space", "Review statistics", "Back")

		option, err := p.choice(6)
		if err != nil {
			return err
		}

		switch option {
		case 1:
			err = c.leaveReview(ctx, p)
		case 2:
			err = c.listReviews(ctx, p)
		case 3:
			err = c.reviewsBySpace(ctx, p)
		case 4:
			err = c.averageBySpace(ctx, p)
		case 5:
			err = c.reviewStats(ctx, p)
		case 6:
			return nil
		}

		if err = reportFailure(p, err); err != nil {
			return err
		}
	}
}

func (c *Console) leaveReview(ctx context.Context, p *prompt) (err error) {
	var req reviewDto.SaveRequest

	if req.UserName, err = p.line("Your name"); err != nil {
		return err
	}

	if req.Space, err = p.line("Parking space location"); err != nil {
		return err
	}

	if req.Rating, err = p.integer("Rating (1-5)"); err != nil {
		return err
	}

	if req.Comment, err = p.line("Comment (optional)"); err != nil {
		return err
	}

	review, err := c.Services.Reviews.Save(ctx, req)
	if err != nil {
		return err //nolint:wrapcheck
	}

	p.printf("✓ Review saved %s\n", review.Stars)

	return nil
}

func (c *Console) listReviews(ctx context.Context, p *prompt) error {
	reviews, err := c.Services.Reviews.List(ctx, gDto.QueryParams{Page: 1, Limit: listLimit})
	if err != nil {
		return err //nolint:wrapcheck
	}

	p.printf("\nReviews (%d)\n", reviews.TotalData)
	printReviews(p, reviews.Reviews)

	return nil
}

func (c *Console) reviewsBySpace(ctx context.Context, p *prompt) error {
	space, err := p.line("Parking space location")
	if err != nil {
		return err
	}

	reviews, err := c.Services.Reviews.BySpace(ctx, space)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if len(reviews) == 0 {
		p.println("No reviews for this space yet.")

		return nil
	}

	printReviews(p, reviews)

	return nil
}

func printReviews(p *prompt, reviews []reviewDto.ReviewResponse) {
	for _, r := range reviews {
		p.printf("  [%d] %s  %s  %-18s %s\n", r.ID, r.ReviewedAt, r.Stars, r.Space, r.UserName)

		if r.Comment != "" {
			p.printf("       %q\n", r.Comment)
		}
	}
}

func (c *Console) averageBySpace(ctx context.Context, p *prompt) error {
	space, err := p.line("Parking space location")
	if err != nil {
		return err
	}

	avg, err := c.Services.Reviews.Average(ctx, space)
	if err != nil {
		return err //nolint:wrapcheck
	}

	p.printf("%s: %s / 5 from %d reviews\n", avg.Space, avg.Average.StringFixed(1), avg.Count)

	return nil
}

func (c *Console) reviewStats(ctx context.Context, p *prompt) error {
	stats, err := c.Services.Reviews.Stats(ctx)
	if err != nil {
		return err //nolint:wrapcheck
	}

	p.printf("\n%d reviews, average %s / 5\n", stats.Total, stats.Average.StringFixed(1))
	printShares(p, stats.Distribution)

	return nil
}

// systemStats is the public overview: occupancy and visitor flow.
func (c *Console) systemStats(ctx context.Context, p *prompt) error {
	if err := reportFailure(p, c.listSpaces(ctx, p)); err != nil {
		return err
	}

	stats, err := c.Services.Visits.Stats(ctx)
	if err != nil {
		return reportFailure(p, err)
	}

	printVisitSummary(p, stats)

	return nil
}

func printVisitSummary(p *prompt, s report.VisitSummary) {
	p.println("\nVisitor flow")
	p.printf("  Total: %d  Today: %d  This week: %d  This month: %d\n", s.Total, s.Today, s.Week, s.Month)
	p.println("  By access type")
	printShares(p, s.ByAccess)
	p.println("  Peak hours")
	printShares(p, s.PeakHours)
	p.println("  By weekday")
	printShares(p, s.ByWeekday)
}

func printShares(p *prompt, shares []report.Share) {
	for _, s := range shares {
		p.printf("    %-12s %4d  %s%%\n", s.Label, s.Count, s.Percent.StringFixed(1))
	}
}

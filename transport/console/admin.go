package console

import (
	"context"

	adminDto "ecoparking/internal/domains/admin/model/dto"
	citationDto "ecoparking/internal/domains/citation/model/dto"
	"ecoparking/internal/domains/fee"
	spaceDto "ecoparking/internal/domains/space/model/dto"
	"ecoparking/shared/constant"
	gDto "ecoparking/shared/dto"
	"ecoparking/shared/failure"
)

const listLimit = 20

func (c *Console) adminMenu(ctx context.Context, p *prompt) error {
	var req adminDto.LoginRequest

	var err error

	if req.Identification, err = p.line("Administrator identification"); err != nil {
		return err
	}

	if req.Password, err = p.line("Password"); err != nil {
		return err
	}

	login, err := c.Services.Admins.Login(ctx, req)
	if err != nil {
		return reportFailure(p, err)
	}

	p.printf("Welcome, %s.\n", login.Admin.Name)

	ctx = session(ctx, login.Admin.Name, constant.RoleAdmin)

	for {
		p.menu("Administrator",
			"Change availability", "Update rate", "Admin data", "Vehicle statistics", "Earnings report",
			"Visit history", "Users", "Citations", "Loyalty program", "Review moderation", "Prune stale data", "Back",
		)

		option, err := p.choice(12)
		if err != nil {
			return err
		}

		switch option {
		case 1:
			err = c.changeAvailability(ctx, p)
		case 2:
			err = c.updateRate(ctx, p)
		case 3:
			err = c.adminProfile(ctx, p)
		case 4:
			err = c.vehicleStats(ctx, p)
		case 5:
			err = c.earningsMenu(ctx, p)
		case 6:
			err = c.visitHistory(ctx, p)
		case 7:
			err = c.listUsers(ctx, p)
		case 8:
			err = c.allCitations(ctx, p)
		case 9:
			err = c.loyaltyProgram(ctx, p)
		case 10:
			err = c.moderateReviews(ctx, p)
		case 11:
			err = c.prune(ctx, p)
		case 12:
			return nil
		}

		if err = reportFailure(p, err); err != nil {
			return err
		}
	}
}

func (c *Console) changeAvailability(ctx context.Context, p *prompt) error {
	if err := c.listSpaces(ctx, p); err != nil {
		return err
	}

	id, err := p.id("Parking space ID")
	if err != nil {
		return err
	}

	count, err := p.integer("New available count")
	if err != nil {
		return err
	}

	if err = c.Services.Spaces.ChangeAvailability(ctx, id, spaceDto.ChangeAvailabilityRequest{AvailableCount: count}); err != nil {
		return err //nolint:wrapcheck
	}

	p.println("✓ Availability updated.")

	return nil
}

func (c *Console) updateRate(ctx context.Context, p *prompt) error {
	if err := c.listSpaces(ctx, p); err != nil {
		return err
	}

	id, err := p.id("Parking space ID")
	if err != nil {
		return err
	}

	rate, err := p.decimal("New hourly rate")
	if err != nil {
		return err
	}

	if err = c.Services.Spaces.UpdateRate(ctx, id, spaceDto.UpdateRateRequest{HourlyRate: rate}); err != nil {
		return err //nolint:wrapcheck
	}

	p.println("✓ Hourly rate updated.")

	return nil
}

func (c *Console) adminProfile(ctx context.Context, p *prompt) error {
	admin, err := c.Services.Admins.Profile(ctx)
	if err != nil {
		return err //nolint:wrapcheck
	}

	p.println("\nAdministrator")
	p.printf("  Name:           %s\n", admin.Name)
	p.printf("  Identification: %s\n", admin.Identification)

	return nil
}

func (c *Console) vehicleStats(ctx context.Context, p *prompt) error {
	stats, err := c.Services.VehicleStats.Stats(ctx)
	if err != nil {
		return err //nolint:wrapcheck
	}

	p.println("\nVehicle statistics")

	for _, v := range stats.Vehicles {
		p.printf("  %-10s uses %4d  week %3d  month %3d  collected %s\n",
			v.VehicleType, v.UseCount, v.WeeklyUses, v.MonthlyUses, fee.Display(v.TotalCollected))
	}

	p.printf("  Total uses %d, collected %s\n", stats.TotalUses, fee.Display(stats.TotalCollected))

	return nil
}

func (c *Console) earningsMenu(ctx context.Context, p *prompt) error {
	for {
		p.menu("Earnings report", "Summary", "Date range", "Export CSV", "Back")

		option, err := p.choice(4)
		if err != nil {
			return err
		}

		switch option {
		case 1:
			err = c.earningsSummary(ctx, p)
		case 2:
			err = c.earningsRange(ctx, p)
		case 3:
			err = c.exportEarnings(ctx, p)
		case 4:
			return nil
		}

		if err = reportFailure(p, err); err != nil {
			return err
		}
	}
}

func (c *Console) earningsSummary(ctx context.Context, p *prompt) error {
	summary, err := c.Services.Earnings.Summary(ctx)
	if err != nil {
		return err //nolint:wrapcheck
	}

	p.println("\nEarnings")
	p.printf("  Last 7 days:    %s\n", fee.Display(summary.Week))
	p.printf("  This month:     %s\n", fee.Display(summary.Month))
	p.printf("  This year:      %s\n", fee.Display(summary.Year))
	p.printf("  All time:       %s (%d payments)\n", fee.Display(summary.Total), summary.Payments)
	p.printf("  Daily average:  %s\n", fee.Display(summary.DailyAverage))

	for _, m := range summary.ByMethod {
		p.printf("  %-14s  %s (%d)\n", m.Label, fee.Display(m.Amount), m.Count)
	}

	p.println("  Top locations")

	for i, l := range summary.TopLocations {
		p.printf("  %d. %-18s %s\n", i+1, l.Label, fee.Display(l.Amount))
	}

	return nil
}

func (c *Console) readRange(p *prompt) (gDto.DateRange, error) {
	from, err := p.line("From (" + constant.DateOnlyFormat + ")")
	if err != nil {
		return gDto.DateRange{}, err
	}

	to, err := p.line("To (" + constant.DateOnlyFormat + ")")
	if err != nil {
		return gDto.DateRange{}, err
	}

	rng, err := gDto.ParseDateRange(from, to)
	if err != nil {
		return rng, failure.BadRequest(err) //nolint:wrapcheck
	}

	return rng, nil
}

func (c *Console) earningsRange(ctx context.Context, p *prompt) error {
	rng, err := c.readRange(p)
	if err != nil {
		return err
	}

	res, err := c.Services.Earnings.Range(ctx, rng)
	if err != nil {
		return err //nolint:wrapcheck
	}

	p.printf("\nEarnings from %s to %s\n", res.From, res.To)

	for _, e := range res.Earnings {
		p.printf("  %s  %-32s %8s  %-5s %s\n", e.PaidAt, e.Concept, fee.Display(e.Amount), e.PaymentMethod, e.UserName)
	}

	p.printf("  %d payments, total %s\n", res.Count, fee.Display(res.Total))

	return nil
}

func (c *Console) exportEarnings(ctx context.Context, p *prompt) error {
	var rng *gDto.DateRange

	whole, err := p.confirm("Export every entry")
	if err != nil {
		return err
	}

	if !whole {
		r, err := c.readRange(p)
		if err != nil {
			return err
		}

		rng = &r
	}

	res, err := c.Services.Earnings.ExportCSV(ctx, rng)
	if err != nil {
		return err //nolint:wrapcheck
	}

	p.printf("✓ %d rows written to %s\n", res.Rows, res.Path)

	if res.URL != constant.Empty {
		p.printf("  Uploaded to %s\n", res.URL)
	}

	return nil
}

func (c *Console) visitHistory(ctx context.Context, p *prompt) error {
	stats, err := c.Services.Visits.Stats(ctx)
	if err != nil {
		return err //nolint:wrapcheck
	}

	printVisitSummary(p, stats)

	recent, err := c.Services.Visits.History(ctx, gDto.QueryParams{Page: 1, Limit: listLimit})
	if err != nil {
		return err //nolint:wrapcheck
	}

	p.println("  Recent entries")

	for _, v := range recent.Visits {
		p.printf("  %s  %-6s %s\n", v.EnteredAt, v.AccessType, v.PersonName)
	}

	return nil
}

func (c *Console) listUsers(ctx context.Context, p *prompt) error {
	users, err := c.Services.Users.GetAll(ctx, gDto.QueryParams{Page: 1, Limit: listLimit})
	if err != nil {
		return err //nolint:wrapcheck
	}

	p.printf("\nRegistered users (%d)\n", users.TotalData)

	for _, u := range users.Users {
		p.printf("  [%d] %-24s %-12s %s\n", u.ID, u.Name, u.Cedula, u.Email)
	}

	return nil
}

func (c *Console) allCitations(ctx context.Context, p *prompt) error {
	citations, err := c.Services.Citations.List(ctx, gDto.QueryParams{Page: 1, Limit: listLimit})
	if err != nil {
		return err //nolint:wrapcheck
	}

	p.printf("\nCitations (%d)\n", citations.TotalData)

	for _, ct := range citations.Citations {
		p.printf("  %-24s ", ct.UserName)
		printCitations(p, []citationDto.CitationResponse{ct})
	}

	id, err := p.id("Citation ID to settle (0 to skip)")
	if err != nil || id == 0 {
		return err
	}

	invoice, err := c.Services.Citations.Pay(ctx, citationDto.PayRequest{CitationID: id})
	if err != nil {
		return err //nolint:wrapcheck
	}

	printInvoice(p, invoice)

	return nil
}

func (c *Console) loyaltyProgram(ctx context.Context, p *prompt) error {
	records, err := c.Services.Loyalty.List(ctx, gDto.QueryParams{Page: 1, Limit: listLimit})
	if err != nil {
		return err //nolint:wrapcheck
	}

	p.printf("\nLoyalty members (%d)\n", records.TotalData)

	for _, r := range records.Records {
		p.printf("  %-24s %-7s %4d reservations  saved %s\n", r.Name, r.Tier, r.ReservationCount, fee.Display(r.CumulativeDiscount))
	}

	return nil
}

func (c *Console) moderateReviews(ctx context.Context, p *prompt) error {
	if err := c.listReviews(ctx, p); err != nil {
		return err
	}

	id, err := p.id("Review ID to delete (0 to skip)")
	if err != nil || id == 0 {
		return err
	}

	if err = c.Services.Reviews.Delete(ctx, id); err != nil {
		return err //nolint:wrapcheck
	}

	p.println("✓ Review deleted.")

	return nil
}

func (c *Console) prune(ctx context.Context, p *prompt) error {
	ok, err := p.confirm("Delete earnings and visit entries past their retention period")
	if err != nil || !ok {
		return err
	}

	earnings, err := c.Services.Earnings.Prune(ctx)
	if err != nil {
		return err //nolint:wrapcheck
	}

	visits, err := c.Services.Visits.Prune(ctx)
	if err != nil {
		return err //nolint:wrapcheck
	}

	p.printf("✓ Removed %d earnings entries and %d visit entries.\n", earnings, visits)

	return nil
}

package console

import (
	"context"

	citationDto "ecoparking/internal/domains/citation/model/dto"
	"ecoparking/internal/domains/fee"
	parkingDto "ecoparking/internal/domains/parking/model/dto"
	reviewDto "ecoparking/internal/domains/review/model/dto"
	spaceDto "ecoparking/internal/domains/space/model/dto"
	userDto "ecoparking/internal/domains/user/model/dto"
	"ecoparking/shared/constant"
	"ecoparking/shared/timezone"
)

func (c *Console) userMenu(ctx context.Context, p *prompt) error {
	p.menu("User access", "Register", "Login", "Back")

	option, err := p.choice(3)
	if err != nil || option == 0 || option == 3 {
		return err
	}

	var user userDto.UserResponse

	if option == 1 {
		user, err = c.register(ctx, p)
	} else {
		user, err = c.login(ctx, p)
	}

	if err != nil {
		return reportFailure(p, err)
	}

	p.printf("Welcome, %s.\n", user.Name)

	return c.spaceMenu(session(ctx, user.Name, constant.RoleUser), p, user)
}

func (c *Console) register(ctx context.Context, p *prompt) (res userDto.UserResponse, err error) {
	var req userDto.RegisterRequest

	if req.Name, err = p.line("Full name"); err != nil {
		return res, err
	}

	if req.Cedula, err = p.line("Cedula"); err != nil {
		return res, err
	}

	if req.Email, err = p.line("Email"); err != nil {
		return res, err
	}

	if req.Phone, err = p.line("Phone (optional)"); err != nil {
		return res, err
	}

	return c.Services.Users.Register(ctx, req) //nolint:wrapcheck
}

func (c *Console) login(ctx context.Context, p *prompt) (res userDto.UserResponse, err error) {
	var req userDto.LoginRequest

	if req.Cedula, err = p.line("Cedula"); err != nil {
		return res, err
	}

	if req.Email, err = p.line("Email"); err != nil {
		return res, err
	}

	return c.Services.Users.Login(ctx, req) //nolint:wrapcheck
}

func (c *Console) spaceMenu(ctx context.Context, p *prompt, user userDto.UserResponse) error {
	for {
		if err := reportFailure(p, c.listSpaces(ctx, p)); err != nil {
			return err
		}

		id, err := p.id("Parking space ID (0 to go back)")
		if err != nil {
			if reportErr := reportFailure(p, err); reportErr != nil {
				return reportErr
			}

			continue
		}

		if id == 0 {
			return nil
		}

		space, err := c.Services.Spaces.Get(ctx, id)
		if err != nil {
			if reportErr := reportFailure(p, err); reportErr != nil {
				return reportErr
			}

			continue
		}

		if err = c.parkingMenu(ctx, p, user, space); err != nil {
			return err
		}
	}
}

func (c *Console) listSpaces(ctx context.Context, p *prompt) error {
	spaces, err := c.Services.Spaces.List(ctx)
	if err != nil {
		return err //nolint:wrapcheck
	}

	p.println("\nParking spaces")

	for _, s := range spaces.Spaces {
		p.printf("[%d] %-18s %-10s %3d available  %s/h  %s\n",
			s.ID, s.Location, s.VehicleType, s.AvailableCount, fee.Display(s.HourlyRate), s.State)
	}

	return nil
}

func (c *Console) parkingMenu(ctx context.Context, p *prompt, user userDto.UserResponse, space spaceDto.SpaceResponse) error {
	for {
		p.menu(space.Location,
			"Reserve", "Show reservation code", "Change reservation code", "Pay", "Payment status",
			"Loyalty stats", "My citations", "Back",
		)

		option, err := p.choice(8)
		if err != nil {
			return err
		}

		switch option {
		case 1:
			err = c.reserve(ctx, p, user, space)
		case 2:
			err = c.revealCode(ctx, p, space)
		case 3:
			err = c.changeCode(ctx, p, space)
		case 4:
			err = c.pay(ctx, p, user, space)
		case 5:
			err = c.paymentStatus(ctx, p, user, space)
		case 6:
			err = c.loyaltyStats(ctx, p, user)
		case 7:
			err = c.myCitations(ctx, p, user)
		case 8:
			return nil
		}

		if err = reportFailure(p, err); err != nil {
			return err
		}
	}
}

func (c *Console) reserve(ctx context.Context, p *prompt, user userDto.UserResponse, space spaceDto.SpaceResponse) error {
	hours, err := p.decimal("Hours to reserve (0.5 is half an hour)")
	if err != nil {
		return err
	}

	res, err := c.Services.Parking.Reserve(ctx, user, parkingDto.ReserveRequest{SpaceID: space.ID, Hours: hours})
	if err != nil {
		return err //nolint:wrapcheck
	}

	p.printf("✓ Reserved %s (%s) for %s h at %s/h.\n", res.Location, res.VehicleType, res.Hours, fee.Display(res.HourlyRate))
	p.printf("  Scheduled exit: %s\n", res.ScheduledExit())
	p.printf("  Reservation code: %s\n", res.MaskedCode)

	return nil
}

func (c *Console) revealCode(ctx context.Context, p *prompt, space spaceDto.SpaceResponse) error {
	location, err := p.line("Confirm the exact location")
	if err != nil {
		return err
	}

	code, err := c.Services.Spaces.RevealCode(ctx, space.ID, location)
	if err != nil {
		return err //nolint:wrapcheck
	}

	p.printf("Reservation code: %s\n", code)

	return nil
}

func (c *Console) changeCode(ctx context.Context, p *prompt, space spaceDto.SpaceResponse) error {
	var req spaceDto.ChangeCodeRequest

	var err error

	if req.Location, err = p.line("Confirm the exact location"); err != nil {
		return err
	}

	if req.Code, err = p.line("New reservation code"); err != nil {
		return err
	}

	if err = c.Services.Spaces.ChangeCode(ctx, space.ID, req); err != nil {
		return err //nolint:wrapcheck
	}

	p.println("✓ Reservation code updated.")

	return nil
}

func (c *Console) pay(ctx context.Context, p *prompt, user userDto.UserResponse, space spaceDto.SpaceResponse) error {
	p.menu("Payment method", "Card", "Cash")

	method, err := p.choice(2)
	if err != nil || method == 0 {
		return err
	}

	req := parkingDto.CheckoutRequest{SpaceID: space.ID, Method: constant.PaymentMethodCard}
	if method == 2 {
		req.Method = constant.PaymentMethodCash
	}

	if req.PaidHours, err = p.decimal("Hours to pay"); err != nil {
		return err
	}

	if req.Confirm, err = p.confirm("Confirm payment"); err != nil {
		return err
	}

	if !req.Confirm {
		p.println("Payment cancelled.")

		return nil
	}

	receipt, err := c.Services.Parking.Checkout(ctx, user, req)
	if err != nil {
		return err //nolint:wrapcheck
	}

	printReceipt(p, receipt)

	return c.offerReview(ctx, p, user, receipt.Location)
}

func printReceipt(p *prompt, r parkingDto.ReceiptResponse) {
	p.println("\n✓ Payment recorded")
	p.printf("  Location:     %s\n", r.Location)
	p.printf("  Method:       %s\n", r.Method)
	p.printf("  Hours paid:   %s\n", r.PaidHours)
	p.printf("  Amount:       %s\n", fee.Display(r.Amount))

	if r.DiscountApplied {
		p.printf("  Loyalty:      -%s (%s member)\n", fee.Display(r.Discount), r.Tier)
	}

	p.printf("  Total:        %s\n", fee.Display(r.Total))
	p.printf("  Transaction:  %s\n", r.TransactionID)
	p.printf("  Date:         %s\n", timezone.Format(r.PaidAt, constant.DisplayFormat))

	if r.Citation != nil {
		p.printf("\n⚠ Citation #%d: %s. Penalty %s.\n", r.Citation.ID, r.Citation.Reason, fee.Display(r.Citation.Penalty))
	}
}

func (c *Console) offerReview(ctx context.Context, p *prompt, user userDto.UserResponse, location string) error {
	ok, err := p.confirm("Would you like to rate this parking space")
	if err != nil || !ok {
		return err
	}

	req := reviewDto.SaveRequest{Space: location, UserName: user.Name}

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

	p.printf("✓ Thanks for your review %s\n", review.Stars)

	return nil
}

func (c *Console) paymentStatus(ctx context.Context, p *prompt, user userDto.UserResponse, space spaceDto.SpaceResponse) error {
	res, err := c.Services.Parking.PaymentStatus(ctx, user, space.ID)
	if err != nil {
		return err //nolint:wrapcheck
	}

	p.printf("Payment status: %s\n", res.Status)

	return nil
}

func (c *Console) loyaltyStats(ctx context.Context, p *prompt, user userDto.UserResponse) error {
	stats, err := c.Services.Loyalty.Stats(ctx, user.ID)
	if err != nil {
		return err //nolint:wrapcheck
	}

	p.println("\nLoyalty program")
	p.printf("  Tier:                %s\n", stats.Tier)
	p.printf("  Reservations:        %d\n", stats.ReservationCount)
	p.printf("  Total saved:         %s\n", fee.Display(stats.CumulativeDiscount))
	p.printf("  Until next discount: %d\n", stats.UntilNextDiscount)

	return nil
}

func (c *Console) myCitations(ctx context.Context, p *prompt, user userDto.UserResponse) error {
	citations, err := c.Services.Citations.ListByUser(ctx, user.ID)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if len(citations) == 0 {
		p.println("You have no citations.")

		return nil
	}

	printCitations(p, citations)

	if citations[0].Paid {
		return nil
	}

	id, err := p.id("Citation ID to pay (0 to skip)")
	if err != nil || id == 0 {
		return err
	}

	invoice, err := c.Services.Citations.Pay(ctx, citationDto.PayRequest{CitationID: id, UserID: user.ID})
	if err != nil {
		return err //nolint:wrapcheck
	}

	printInvoice(p, invoice)

	return nil
}

func printCitations(p *prompt, citations []citationDto.CitationResponse) {
	for _, c := range citations {
		status := "UNPAID"
		if c.Paid {
			status = "paid " + c.InvoiceNumber
		}

		p.printf("[%d] %s  %-18s %s  %s  %s\n", c.ID, c.IssuedAt, c.Location, c.Reason, fee.Display(c.Penalty), status)
	}
}

func printInvoice(p *prompt, inv citationDto.PayResponse) {
	p.println("\n✓ Citation paid")
	p.printf("  Invoice:      %s\n", inv.InvoiceNumber)
	p.printf("  Subtotal:     %s\n", fee.Display(inv.Subtotal))
	p.printf("  VAT:          %s\n", fee.Display(inv.Tax))
	p.printf("  Total:        %s\n", fee.Display(inv.Total))
	p.printf("  Transaction:  %s\n", inv.TransactionID)
}

package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/association-manager/association-api/internal/domain"
	"github.com/association-manager/association-api/internal/repository"
)

// StatsService folds activities, attendances and payments of a period into
// the region, unit, member and guest reports.
type StatsService struct {
	activityRepo   ActivityRepository
	attendanceRepo AttendanceRepository
	paymentRepo    PaymentRepository
	discountRepo   DiscountRepository
	directoryRepo  DirectoryRepository
	logger         *zap.Logger
}

func NewStatsService(
	activityRepo ActivityRepository,
	attendanceRepo AttendanceRepository,
	paymentRepo PaymentRepository,
	discountRepo DiscountRepository,
	directoryRepo DirectoryRepository,
	logger *zap.Logger,
) *StatsService {
	return &StatsService{
		activityRepo:   activityRepo,
		attendanceRepo: attendanceRepo,
		paymentRepo:    paymentRepo,
		discountRepo:   discountRepo,
		directoryRepo:  directoryRepo,
		logger:         logger,
	}
}

// periodData is everything a report needs, loaded once per request.
type periodData struct {
	activities  []domain.Activity
	attendances map[uint][]domain.Attendance
	payments    map[uint][]domain.Payment
	balances    map[uint]domain.ActivityBalance
	tiers       []domain.DiscountTier
	warnings    []string
}

func (s *StatsService) loadPeriod(ctx context.Context, start, end time.Time) (*periodData, error) {
	activities, err := s.activityRepo.ListActivitiesBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("s.activityRepo.ListActivitiesBetween -> %w", err)
	}

	tiers, err := s.discountRepo.ListTiers(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.discountRepo.ListTiers -> %w", err)
	}

	data := &periodData{
		activities:  activities,
		attendances: make(map[uint][]domain.Attendance, len(activities)),
		payments:    make(map[uint][]domain.Payment, len(activities)),
		balances:    make(map[uint]domain.ActivityBalance, len(activities)),
		tiers:       tiers,
	}

	for _, activity := range activities {
		attendances, err := s.attendanceRepo.ListByActivity(ctx, activity.ID)
		if err != nil {
			return nil, fmt.Errorf("s.attendanceRepo.ListByActivity -> %w", err)
		}

		payments, err := s.paymentRepo.ListByActivity(ctx, activity.ID)
		if err != nil {
			return nil, fmt.Errorf("s.paymentRepo.ListByActivity -> %w", err)
		}

		valid := attendances[:0:0]
		for _, a := range attendances {
			if _, err := a.Payer(); err != nil {
				s.logger.Warn("skipping malformed attendance row",
					zap.Uint("attendance_id", a.ID),
					zap.Uint("activity_id", activity.ID))
				data.warnings = append(data.warnings,
					fmt.Sprintf("attendance %d of activity %d references neither a member nor an accompanied person", a.ID, activity.ID))
				continue
			}
			valid = append(valid, a)
		}

		data.attendances[activity.ID] = valid
		data.payments[activity.ID] = payments
		data.balances[activity.ID] = domain.ComputeBalance(activity, valid, payments, tiers)
	}

	return data, nil
}

func appliedTier(balance domain.ActivityBalance) *domain.AppliedTier {
	if balance.Tier == nil {
		return nil
	}

	return &domain.AppliedTier{
		TierID:           balance.Tier.ID,
		MinParticipants:  balance.Tier.MinParticipants,
		Percentage:       balance.Tier.Percentage,
		Description:      balance.Tier.Description,
		ParticipantCount: balance.ParticipantCount,
	}
}

// PeriodReport rolls the period's activities up into per-region statements
// and grand totals.
func (s *StatsService) PeriodReport(ctx context.Context, start, end time.Time) (domain.PeriodReport, error) {
	data, err := s.loadPeriod(ctx, start, end)
	if err != nil {
		return domain.PeriodReport{}, err
	}

	regions := make(map[string]*domain.RegionStatement)
	var totals domain.ReportTotals
	balances := make([]domain.ActivityBalance, 0, len(data.activities))

	for _, activity := range data.activities {
		balance := data.balances[activity.ID]
		balances = append(balances, balance)

		stmt, ok := regions[activity.Region]
		if !ok {
			stmt = &domain.RegionStatement{Region: activity.Region}
			regions[activity.Region] = stmt
		}

		stmt.ActivityCount++
		stmt.ParticipantCount += balance.ParticipantCount
		stmt.MemberCount += balance.MemberCount
		stmt.GuestCount += balance.GuestCount
		stmt.GrossDue += balance.GrossDue
		stmt.DiscountAmount += balance.DiscountAmount
		stmt.NetDue += balance.NetDue
		stmt.TotalPaid += balance.TotalPaid
		stmt.Remaining += balance.Remaining
		if tier := appliedTier(balance); tier != nil {
			stmt.AppliedTiers = append(stmt.AppliedTiers, *tier)
		}

		totals.ActivityCount++
		totals.ParticipantCount += balance.ParticipantCount
		totals.GrossDue += balance.GrossDue
		totals.DiscountAmount += balance.DiscountAmount
		totals.NetDue += balance.NetDue
		totals.TotalPaid += balance.TotalPaid
		totals.Remaining += balance.Remaining
	}

	statements := make([]domain.RegionStatement, 0, len(regions))
	for _, stmt := range regions {
		statements = append(statements, *stmt)
	}
	sort.Slice(statements, func(i, j int) bool {
		return statements[i].Region < statements[j].Region
	})

	return domain.PeriodReport{
		Start:         start,
		End:           end,
		ActivityCount: len(data.activities),
		Activities:    balances,
		Regions:       statements,
		Totals:        totals,
		Warnings:      data.warnings,
	}, nil
}

// MemberReport itemizes the period per member and per guest. A member's due
// for an activity is the group's discounted cotisation of that activity, and
// their paid total includes payments recorded on guest rows they accompanied.
func (s *StatsService) MemberReport(ctx context.Context, start, end time.Time) (domain.MemberReport, error) {
	data, err := s.loadPeriod(ctx, start, end)
	if err != nil {
		return domain.MemberReport{}, err
	}

	members, err := s.directoryRepo.ListMembers(ctx)
	if err != nil {
		return domain.MemberReport{}, fmt.Errorf("s.directoryRepo.ListMembers -> %w", err)
	}
	persons, err := s.directoryRepo.ListPersons(ctx)
	if err != nil {
		return domain.MemberReport{}, fmt.Errorf("s.directoryRepo.ListPersons -> %w", err)
	}

	membersByID := make(map[uint]domain.Member, len(members))
	for _, m := range members {
		membersByID[m.ID] = m
	}
	personsByID := make(map[uint]domain.Person, len(persons))
	for _, p := range persons {
		personsByID[p.ID] = p
	}

	warnings := data.warnings
	memberStmts := make(map[uint]*domain.MemberStatement)
	guestStmts := make(map[uint]*domain.GuestStatement)

	paidByAttendance := make(map[uint]float64)
	for _, activity := range data.activities {
		for _, p := range data.payments[activity.ID] {
			paidByAttendance[p.AttendanceID] += p.Amount
		}
	}

	for _, activity := range data.activities {
		balance := data.balances[activity.ID]

		for _, a := range data.attendances[activity.ID] {
			payer, err := a.Payer()
			if err != nil {
				continue
			}

			switch p := payer.(type) {
			case domain.MemberPayer:
				member, ok := membersByID[p.MemberID]
				if !ok {
					s.logger.Warn("skipping attendance of unknown member",
						zap.Uint("attendance_id", a.ID),
						zap.Uint("member_id", p.MemberID))
					warnings = append(warnings,
						fmt.Sprintf("attendance %d references unknown member %d", a.ID, p.MemberID))
					continue
				}

				stmt, ok := memberStmts[p.MemberID]
				if !ok {
					stmt = &domain.MemberStatement{
						MemberID:  member.ID,
						LastName:  member.LastName,
						FirstName: member.FirstName,
					}
					memberStmts[p.MemberID] = stmt
				}

				stmt.ActivityCount++
				stmt.GrossDue += balance.GrossDue
				stmt.DiscountAmount += balance.DiscountAmount
				stmt.NetDue += balance.NetDue
				stmt.TotalPaid += paidByAttendance[a.ID]
				if tier := appliedTier(balance); tier != nil {
					stmt.AppliedTiers = append(stmt.AppliedTiers, *tier)
				}

			case domain.GuestPayer:
				person, ok := personsByID[p.PersonID]
				if !ok {
					s.logger.Warn("skipping attendance of unknown guest",
						zap.Uint("attendance_id", a.ID),
						zap.Uint("person_id", p.PersonID))
					warnings = append(warnings,
						fmt.Sprintf("attendance %d references unknown person %d", a.ID, p.PersonID))
					continue
				}

				stmt, ok := guestStmts[p.PersonID]
				if !ok {
					accompanying := p.AccompanyingMemberID
					stmt = &domain.GuestStatement{
						PersonID:             person.ID,
						LastName:             person.LastName,
						FirstName:            person.FirstName,
						AccompanyingMemberID: &accompanying,
					}
					guestStmts[p.PersonID] = stmt
				}

				stmt.ActivityCount++
				stmt.AmountDue += activity.Cotisation
				stmt.TotalPaid += paidByAttendance[a.ID]

				// Guest payments settle the accompanying member's group
				// balance as well.
				if member, ok := membersByID[p.AccompanyingMemberID]; ok {
					mStmt, ok := memberStmts[p.AccompanyingMemberID]
					if !ok {
						mStmt = &domain.MemberStatement{
							MemberID:  member.ID,
							LastName:  member.LastName,
							FirstName: member.FirstName,
						}
						memberStmts[p.AccompanyingMemberID] = mStmt
					}
					mStmt.GuestsBrought++
					mStmt.TotalPaid += paidByAttendance[a.ID]
				}
			}
		}
	}

	report := domain.MemberReport{
		Start:    start,
		End:      end,
		Warnings: warnings,
	}

	for _, stmt := range memberStmts {
		stmt.Remaining = domain.Remaining(stmt.NetDue, stmt.TotalPaid)
		report.Members = append(report.Members, *stmt)

		report.MemberTotals.ParticipantCount++
		report.MemberTotals.ActivityCount += stmt.ActivityCount
		report.MemberTotals.GrossDue += stmt.GrossDue
		report.MemberTotals.DiscountAmount += stmt.DiscountAmount
		report.MemberTotals.NetDue += stmt.NetDue
		report.MemberTotals.TotalPaid += stmt.TotalPaid
		report.MemberTotals.Remaining += stmt.Remaining
	}
	for _, stmt := range guestStmts {
		stmt.Remaining = domain.Remaining(stmt.AmountDue, stmt.TotalPaid)
		report.Guests = append(report.Guests, *stmt)

		report.GuestTotals.ParticipantCount++
		report.GuestTotals.ActivityCount += stmt.ActivityCount
		report.GuestTotals.GrossDue += stmt.AmountDue
		report.GuestTotals.NetDue += stmt.AmountDue
		report.GuestTotals.TotalPaid += stmt.TotalPaid
		report.GuestTotals.Remaining += stmt.Remaining
	}

	sort.Slice(report.Members, func(i, j int) bool {
		return report.Members[i].MemberID < report.Members[j].MemberID
	})
	sort.Slice(report.Guests, func(i, j int) bool {
		return report.Guests[i].PersonID < report.Guests[j].PersonID
	})

	return report, nil
}

// UnitReport groups participation by the attendees' current unit assignment.
// Guests count toward their own unit, like members. Every unit appears,
// zero-filled when nothing happened in range; attendees without a unit are
// reported under a zero-valued fallback row.
func (s *StatsService) UnitReport(ctx context.Context, start, end time.Time) (domain.UnitReport, error) {
	data, err := s.loadPeriod(ctx, start, end)
	if err != nil {
		return domain.UnitReport{}, err
	}

	units, err := s.directoryRepo.ListUnits(ctx)
	if err != nil {
		return domain.UnitReport{}, fmt.Errorf("s.directoryRepo.ListUnits -> %w", err)
	}
	personUnits, err := s.directoryRepo.ListPersonUnits(ctx)
	if err != nil {
		return domain.UnitReport{}, fmt.Errorf("s.directoryRepo.ListPersonUnits -> %w", err)
	}

	unitByPerson := make(map[uint]repository.PersonUnit, len(personUnits))
	headcount := make(map[uint]int, len(units))
	for _, pu := range personUnits {
		unitByPerson[pu.PersonID] = pu
		if pu.UnitID != nil {
			headcount[*pu.UnitID]++
		}
	}

	warnings := data.warnings
	unitStmts := make(map[uint]*domain.UnitStatement, len(units)+1)
	activitiesSeen := make(map[uint]map[uint]struct{}, len(units)+1)
	// Distinct unassigned attendees, for the fallback row's headcount.
	unassignedSeen := make(map[uint]struct{})
	var totals domain.ReportTotals

	// PersonCount of a real unit is its current headcount, attending or not.
	for _, unit := range units {
		unitStmts[unit.ID] = &domain.UnitStatement{
			UnitID:      unit.ID,
			Description: unit.Description,
			Region:      unit.Region,
			PersonCount: headcount[unit.ID],
		}
		activitiesSeen[unit.ID] = make(map[uint]struct{})
	}

	statementFor := func(pu repository.PersonUnit) *domain.UnitStatement {
		if pu.UnitID != nil {
			if stmt, ok := unitStmts[*pu.UnitID]; ok {
				return stmt
			}
		}

		stmt, ok := unitStmts[0]
		if !ok {
			stmt = &domain.UnitStatement{Description: "Sans unité"}
			unitStmts[0] = stmt
			activitiesSeen[0] = make(map[uint]struct{})
		}

		return stmt
	}

	for _, activity := range data.activities {
		balance := data.balances[activity.ID]

		for _, a := range data.attendances[activity.ID] {
			payer, err := a.Payer()
			if err != nil {
				continue
			}

			personID := uint(0)
			label := "person"
			switch p := payer.(type) {
			case domain.MemberPayer:
				personID = p.MemberID
				label = "member"
			case domain.GuestPayer:
				personID = p.PersonID
			}

			pu, ok := unitByPerson[personID]
			if !ok {
				s.logger.Warn("skipping attendance of unknown attendee",
					zap.Uint("attendance_id", a.ID),
					zap.Uint("person_id", personID))
				warnings = append(warnings,
					fmt.Sprintf("attendance %d references unknown %s %d", a.ID, label, personID))
				continue
			}

			stmt := statementFor(pu)
			key := stmt.UnitID

			if key == 0 {
				if _, seen := unassignedSeen[personID]; !seen {
					unassignedSeen[personID] = struct{}{}
					stmt.PersonCount++
				}
			}
			if _, seen := activitiesSeen[key][activity.ID]; !seen {
				activitiesSeen[key][activity.ID] = struct{}{}
				stmt.ActivityCount++

				stmt.GrossDue += balance.GrossDue
				stmt.DiscountAmount += balance.DiscountAmount
				stmt.NetDue += balance.NetDue
				stmt.TotalPaid += balance.TotalPaid
				if tier := appliedTier(balance); tier != nil {
					stmt.AppliedTiers = append(stmt.AppliedTiers, *tier)
				}
			}
			stmt.ParticipantCount++
		}
	}

	report := domain.UnitReport{
		Start:    start,
		End:      end,
		Warnings: warnings,
	}

	for _, stmt := range unitStmts {
		stmt.Remaining = domain.Remaining(stmt.NetDue, stmt.TotalPaid)
		report.Units = append(report.Units, *stmt)

		totals.ActivityCount += stmt.ActivityCount
		totals.ParticipantCount += stmt.ParticipantCount
		totals.GrossDue += stmt.GrossDue
		totals.DiscountAmount += stmt.DiscountAmount
		totals.NetDue += stmt.NetDue
		totals.TotalPaid += stmt.TotalPaid
		totals.Remaining += stmt.Remaining
	}
	report.Totals = totals

	sort.Slice(report.Units, func(i, j int) bool {
		return report.Units[i].UnitID < report.Units[j].UnitID
	})

	return report, nil
}

func (s *StatsService) RegionActivityCounts(ctx context.Context, start, end time.Time) ([]domain.RegionActivityCount, error) {
	counts, err := s.activityRepo.CountByRegion(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("s.activityRepo.CountByRegion -> %w", err)
	}

	return counts, nil
}

func (s *StatsService) ParticipationCounts(ctx context.Context, start, end time.Time) ([]domain.ActivityParticipation, error) {
	counts, err := s.activityRepo.CountParticipants(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("s.activityRepo.CountParticipants -> %w", err)
	}

	return counts, nil
}

package http

import (
	"net/http"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/org"
	"logistics/internal/core/domain/model/statistics"

	"github.com/labstack/echo/v4"
)

// reportDays is the window used when the report request names no period.
const reportDays = 7

// ChangeUserRole handles PUT /api/v1/users/:userID/role.
func (s *Server) ChangeUserRole(c echo.Context) error {
	userID, err := pathID(c, "userID")
	if err != nil {
		return err
	}
	var req RoleRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	role, err := org.ParseRole(req.Role)
	if err != nil {
		return err
	}
	cmd, err := commands.NewChangeUserRoleCommand(actorFrom(c), userID, commands.ProfileSpec{
		Role:         role,
		CompanyID:    req.CompanyID,
		SupervisorID: req.SupervisorID,
		AdminLevel:   req.AdminLevel,
		License:      req.License,
		Vehicle:      req.Vehicle,
	})
	if err != nil {
		return err
	}
	if err = s.uc.ChangeUserRole.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteCompany handles DELETE /api/v1/companies/:companyID.
func (s *Server) DeleteCompany(c echo.Context) error {
	companyID, err := pathID(c, "companyID")
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteCompanyCommand(actorFrom(c), companyID)
	if err != nil {
		return err
	}
	if err = s.uc.DeleteCompany.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// GetCompanyReport handles GET /api/v1/companies/:companyID/statistics.
// from and to (RFC 3339) default to the last seven days.
func (s *Server) GetCompanyReport(c echo.Context) error {
	companyID, err := pathID(c, "companyID")
	if err != nil {
		return err
	}
	period, err := s.reportPeriod(c)
	if err != nil {
		return err
	}
	query, err := queries.NewGetCompanyReportQuery(actorFrom(c), companyID, period)
	if err != nil {
		return err
	}
	report, err := s.uc.GetCompanyReport.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

// ListStatisticsSnapshots handles GET /api/v1/companies/:companyID/statistics/snapshots.
func (s *Server) ListStatisticsSnapshots(c echo.Context) error {
	companyID, err := pathID(c, "companyID")
	if err != nil {
		return err
	}
	query, err := queries.NewListStatisticsSnapshotsQuery(actorFrom(c), companyID)
	if err != nil {
		return err
	}
	reports, err := s.uc.ListStatisticsSnapshots.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reports)
}

func (s *Server) reportPeriod(c echo.Context) (statistics.Period, error) {
	from, err := queryTime(c, "from")
	if err != nil {
		return statistics.Period{}, err
	}
	to, err := queryTime(c, "to")
	if err != nil {
		return statistics.Period{}, err
	}
	if from == nil && to == nil {
		return statistics.LastDays(s.clock.Now(), reportDays), nil
	}

	end := s.clock.Now()
	if to != nil {
		end = *to
	}
	start := end.Add(-reportDays * 24 * time.Hour)
	if from != nil {
		start = *from
	}
	return statistics.NewPeriod(start, end)
}

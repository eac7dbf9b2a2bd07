package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wastezero/wastezero-api/store"
)

// platformStats is the API for the admin overview dashboard.
func (s *Server) platformStats(c *gin.Context) {
	stats, err := s.store.PlatformStats()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, stats)
}

// adminListUsers pages through non-admin accounts.
func (s *Server) adminListUsers(c *gin.Context) {
	page, limit := pagination(c, 50, 100)

	accounts, total, err := s.store.ListMembers(page, limit)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users": accounts,
		"total": total,
		"page":  page,
		"pages": pages(total, limit),
	})
}

// adminAllUsers returns every account without paging. Used by the
// user report export.
func (s *Server) adminAllUsers(c *gin.Context) {
	accounts, err := s.store.ListAllAccounts()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, accounts)
}

// adminSuspendUser flips the suspension flag of an account.
func (s *Server) adminSuspendUser(c *gin.Context) {
	admin, ok := currentAccount(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	userID := c.Param("userID")
	if userID == admin.ID.String() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	account, err := s.store.ToggleAccountSuspension(admin.ID.String(), userID)
	if err != nil {
		switch err {
		case store.ErrAccountNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorAccountNotFound)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": account})
}

// adminDeleteUser removes an account permanently.
func (s *Server) adminDeleteUser(c *gin.Context) {
	admin, ok := currentAccount(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	userID := c.Param("userID")
	if userID == admin.ID.String() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if err := s.store.DeleteAccount(admin.ID.String(), userID); err != nil {
		switch err {
		case store.ErrAccountNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorAccountNotFound)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// adminLogs returns the most recent audit entries, newest first.
func (s *Server) adminLogs(c *gin.Context) {
	limit, err := strconv.ParseInt(c.Query("limit"), 10, 64)
	if err != nil || limit < 1 {
		limit = 100
	}
	if limit > 200 {
		limit = 200
	}

	entries, err := s.store.ListAuditEntries(limit)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, entries)
}

// adminReportUsers is the account roster export.
func (s *Server) adminReportUsers(c *gin.Context) {
	accounts, err := s.store.ListAllAccounts()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": accounts, "total": len(accounts)})
}

// adminReportPickups is the full pickup export.
func (s *Server) adminReportPickups(c *gin.Context) {
	page, limit := pagination(c, 100, 200)

	pickups, total, err := s.store.ListAllPickups(page, limit)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pickups": pickups,
		"total":   total,
		"page":    page,
		"pages":   pages(total, limit),
	})
}

// adminReportWaste breaks down collected waste by type.
func (s *Server) adminReportWaste(c *gin.Context) {
	report, err := s.store.WasteReport()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, report)
}

// adminReportVolunteers lists volunteers with their pickup tallies.
func (s *Server) adminReportVolunteers(c *gin.Context) {
	report, err := s.store.VolunteerReport()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, report)
}

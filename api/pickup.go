package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wastezero/wastezero-api/schema"
	"github.com/wastezero/wastezero-api/store"
)

// pagination reads page/limit query parameters with a hard cap on the
// page size.
func pagination(c *gin.Context, defaultLimit, maxLimit int64) (int64, int64) {
	page, err := strconv.ParseInt(c.Query("page"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.ParseInt(c.Query("limit"), 10, 64)
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return page, limit
}

func pages(total, limit int64) int64 {
	if total == 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// createPickup is the API for scheduling a new pickup request.
// Requesters only.
func (s *Server) createPickup(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	switch account.Role {
	case schema.RoleRequester:
	case schema.RoleVolunteer, schema.RoleAdmin:
		abortWithEncoding(c, http.StatusForbidden, errorOnlyRequesters)
		return
	default:
		abortWithEncoding(c, http.StatusForbidden, errorUnsupportedRole)
		return
	}

	var params struct {
		Title             string           `json:"title"`
		WasteType         schema.WasteType `json:"waste_type"`
		Description       string           `json:"description"`
		EstimatedQuantity string           `json:"estimated_quantity"`
		Address           string           `json:"address"`
		PreferredDate     time.Time        `json:"preferred_date"`
		PreferredTime     string           `json:"preferred_time"`
		ContactDetails    string           `json:"contact_details"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Title == "" || !params.WasteType.Valid() || params.EstimatedQuantity == "" ||
		params.Address == "" || params.PreferredDate.IsZero() || params.PreferredTime == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	pickup, err := s.store.CreatePickup(account, store.PickupParams{
		Title:             params.Title,
		WasteType:         params.WasteType,
		Description:       params.Description,
		EstimatedQuantity: params.EstimatedQuantity,
		Address:           params.Address,
		PreferredDate:     params.PreferredDate,
		PreferredTime:     params.PreferredTime,
		ContactDetails:    params.ContactDetails,
	})
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusCreated, pickup)
}

// listMyPickups returns the pickups the current account is entitled to
// see for its role.
func (s *Server) listMyPickups(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	page, limit := pagination(c, 20, 50)

	pickups, err := s.store.ListOwnPickups(account, page, limit)
	if err != nil {
		if err == store.ErrUnknownRole {
			abortWithEncoding(c, http.StatusForbidden, errorUnsupportedRole)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, pickups)
}

// listOpportunities returns open pickups for volunteers to claim.
func (s *Server) listOpportunities(c *gin.Context) {
	page, limit := pagination(c, 20, 50)

	pickups, total, err := s.store.ListOpenPickups(page, limit)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pickups": pickups,
		"total":   total,
		"page":    page,
		"pages":   pages(total, limit),
	})
}

// listAllPickups is the admin view over every pickup.
func (s *Server) listAllPickups(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	switch account.Role {
	case schema.RoleAdmin:
	case schema.RoleRequester, schema.RoleVolunteer:
		abortWithEncoding(c, http.StatusForbidden, errorAdminRequired)
		return
	default:
		abortWithEncoding(c, http.StatusForbidden, errorUnsupportedRole)
		return
	}

	page, limit := pagination(c, 50, 100)

	pickups, total, err := s.store.ListAllPickups(page, limit)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pickups": pickups,
		"total":   total,
		"page":    page,
		"pages":   pages(total, limit),
	})
}

func (s *Server) getPickup(c *gin.Context) {
	pickup, err := s.store.GetPickup(c.Param("pickupID"))
	if err != nil {
		if err == store.ErrPickupNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorPickupNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, pickup)
}

// acceptPickup is the API for a volunteer to claim an open pickup.
// Exactly one volunteer wins a race; the others get a conflict.
func (s *Server) acceptPickup(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	switch account.Role {
	case schema.RoleVolunteer:
	case schema.RoleRequester, schema.RoleAdmin:
		abortWithEncoding(c, http.StatusForbidden, errorOnlyVolunteers)
		return
	default:
		abortWithEncoding(c, http.StatusForbidden, errorUnsupportedRole)
		return
	}

	pickup, err := s.store.AcceptPickup(account, c.Param("pickupID"))
	if err != nil {
		switch err {
		case store.ErrPickupNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorPickupNotFound)
		case store.ErrPickupTaken:
			abortWithEncoding(c, http.StatusConflict, errorPickupTaken)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, pickup)
}

// completePickup marks an accepted pickup as done and applies the
// stats side effects. Assigned volunteer or admin only.
func (s *Server) completePickup(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	switch account.Role {
	case schema.RoleVolunteer, schema.RoleAdmin:
	case schema.RoleRequester:
		abortWithEncoding(c, http.StatusForbidden, errorOnlyCompleters)
		return
	default:
		abortWithEncoding(c, http.StatusForbidden, errorUnsupportedRole)
		return
	}

	pickup, err := s.store.CompletePickup(account, c.Param("pickupID"))
	if err != nil {
		switch err {
		case store.ErrPickupNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorPickupNotFound)
		case store.ErrPickupNotAccepted:
			abortWithEncoding(c, http.StatusBadRequest, errorPickupNotAccepted)
		case store.ErrNotAssignedVolunteer:
			abortWithEncoding(c, http.StatusForbidden, errorNotAssignedVolunteer)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, pickup)
}

// cancelPickup cancels an open or accepted pickup. Volunteers may
// never cancel, not even their own assignments.
func (s *Server) cancelPickup(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	switch account.Role {
	case schema.RoleRequester, schema.RoleAdmin:
	case schema.RoleVolunteer:
		abortWithEncoding(c, http.StatusForbidden, errorVolunteerCancel)
		return
	default:
		abortWithEncoding(c, http.StatusForbidden, errorUnsupportedRole)
		return
	}

	if err := s.store.CancelPickup(account, c.Param("pickupID")); err != nil {
		switch err {
		case store.ErrPickupNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorPickupNotFound)
		case store.ErrNotPickupOwner:
			abortWithEncoding(c, http.StatusForbidden, errorNotPickupOwner)
		case store.ErrPickupClosed:
			abortWithEncoding(c, http.StatusBadRequest, errorPickupClosed)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// deletePickup removes a pickup entirely. Admin only.
func (s *Server) deletePickup(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	switch account.Role {
	case schema.RoleAdmin:
	case schema.RoleRequester, schema.RoleVolunteer:
		abortWithEncoding(c, http.StatusForbidden, errorAdminRequired)
		return
	default:
		abortWithEncoding(c, http.StatusForbidden, errorUnsupportedRole)
		return
	}

	if err := s.store.DeletePickup(account, c.Param("pickupID")); err != nil {
		if err == store.ErrPickupNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorPickupNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/wastezero/wastezero-api/schema"
	"github.com/wastezero/wastezero-api/store"
)

// accountDetail is the API to query the current account
func (s *Server) accountDetail(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": account})
}

// accountUpdateProfile is the API to update profile fields of the
// current account. Absent fields keep their stored values.
func (s *Server) accountUpdateProfile(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var params struct {
		Name     *string  `json:"name"`
		Email    *string  `json:"email"`
		Location *string  `json:"location"`
		Bio      *string  `json:"bio"`
		Phone    *string  `json:"phone"`
		Skills   []string `json:"skills"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	updated, err := s.store.UpdateAccountProfile(account.ID.String(), store.AccountProfileUpdate{
		Name:     params.Name,
		Email:    params.Email,
		Location: params.Location,
		Bio:      params.Bio,
		Phone:    params.Phone,
		Skills:   params.Skills,
	})
	if err != nil {
		switch err {
		case store.ErrAccountTaken:
			abortWithEncoding(c, http.StatusBadRequest, errorAccountTaken)
		case store.ErrAccountNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorAccountNotFound)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": updated})
}

// accountChangePassword verifies the current password before storing a
// new digest.
func (s *Server) accountChangePassword(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var params struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.CurrentPassword == "" || len(params.NewPassword) < minPasswordLength {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordDigest), []byte(params.CurrentPassword)); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidCredentials)
		return
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(params.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	if err := s.store.UpdateAccountPassword(account.ID.String(), string(digest)); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// accountStats is the role-shaped dashboard for the current account.
// Admins use the platform stats endpoint instead.
func (s *Server) accountStats(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	switch account.Role {
	case schema.RoleRequester:
		stats, err := s.store.RequesterDashboard(account)
		if shouldInterupt(err, c) {
			return
		}
		c.JSON(http.StatusOK, stats)
	case schema.RoleVolunteer:
		stats, err := s.store.VolunteerDashboard(account)
		if shouldInterupt(err, c) {
			return
		}
		c.JSON(http.StatusOK, stats)
	case schema.RoleAdmin:
		abortWithEncoding(c, http.StatusForbidden, errorInvalidParameters)
	default:
		abortWithEncoding(c, http.StatusForbidden, errorUnsupportedRole)
	}
}

// listVolunteers returns every volunteer account.
func (s *Server) listVolunteers(c *gin.Context) {
	volunteers, err := s.store.ListVolunteers()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, volunteers)
}

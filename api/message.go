package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wastezero/wastezero-api/store"
)

// sendMessage is the API for sending a message to another account,
// optionally tied to a pickup.
func (s *Server) sendMessage(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var params struct {
		ReceiverID string `json:"receiver_id"`
		Content    string `json:"content"`
		PickupID   string `json:"pickup_id"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.ReceiverID == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	message, err := s.store.SendMessage(account, params.ReceiverID, params.Content, params.PickupID)
	if err != nil {
		switch err {
		case store.ErrAccountNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorReceiverNotFound)
		case store.ErrEmptyMessageContent:
			abortWithEncoding(c, http.StatusBadRequest, errorEmptyMessageContent)
		case store.ErrPickupNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorPickupNotFound)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusCreated, message)
}

// getConversations returns the viewer's conversation summaries, newest
// activity first.
func (s *Server) getConversations(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	conversations, err := s.store.ListConversations(account.ID.String())
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, conversations)
}

// getThread returns the message history with one partner and marks the
// unread messages addressed to the viewer as read.
func (s *Server) getThread(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	limit, err := strconv.ParseInt(c.Query("limit"), 10, 64)
	if err != nil {
		limit = 0 // store applies the default
	}

	messages, err := s.store.GetThread(account.ID.String(), c.Param("partnerID"), limit)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

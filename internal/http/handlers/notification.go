package handlers

import (
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/http/response"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListNotifications lists the caller's notifications, direct plus role-wide
func (h *Handler) ListNotifications(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	page, pageSize := parsePagination(c)
	filter := repository.NotificationListFilter{
		Page:       page,
		PageSize:   pageSize,
		UserID:     userID,
		Role:       getUserRole(c),
		Type:       c.Query("type"),
		OnlyUnread: c.Query("unread") == "true",
	}
	notifications, total, err := h.NotificationService.ListNotifications(filter)
	if err != nil {
		respondWithMappedError(c, err, notificationErrorRules)
		return
	}
	response.SuccessWithPage(c, notifications, response.NewPagination(page, pageSize, total))
}

// MarkNotificationRead marks one of the caller's notifications as read
func (h *Handler) MarkNotificationRead(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.NotificationService.MarkRead(id, userID); err != nil {
		respondWithMappedError(c, err, notificationErrorRules)
		return
	}
	response.Success(c, nil)
}

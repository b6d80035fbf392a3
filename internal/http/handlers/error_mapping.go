package handlers

import (
	"errors"

	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/http/response"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/logger"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError maps one business error to an API response code
type mappedHandlerError struct {
	target error
	code   int
}

// respondWithMappedError translates known business errors; anything unmatched
// is an infrastructure fault and gets logged before the generic response.
func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			response.Error(c, rule.code, err.Error())
			return
		}
	}
	logger.Errorw("handler_unexpected_error", "path", c.FullPath(), "error", err)
	response.Error(c, response.CodeInternal, "internal error")
}

var orderErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNotFound, code: response.CodeNotFound},
	{target: service.ErrOrderItemsEmpty, code: response.CodeBadRequest},
	{target: service.ErrOrderItemKindInvalid, code: response.CodeBadRequest},
	{target: service.ErrOrderQuantityInvalid, code: response.CodeBadRequest},
	{target: service.ErrOrderNotPending, code: response.CodeBadRequest},
	{target: service.ErrStatusTransitionInvalid, code: response.CodeBadRequest},
	{target: service.ErrUnitsInsufficient, code: response.CodeBadRequest},
	{target: service.ErrStockInsufficient, code: response.CodeBadRequest},
	{target: service.ErrItemNotFound, code: response.CodeNotFound},
	{target: service.ErrItemInactive, code: response.CodeBadRequest},
	{target: service.ErrCustomizationNotOwned, code: response.CodeForbidden},
	{target: service.ErrRentalDatesRequired, code: response.CodeBadRequest},
	{target: service.ErrDiscountNotFound, code: response.CodeNotFound},
	{target: service.ErrDiscountExpired, code: response.CodeBadRequest},
	{target: service.ErrDiscountInUse, code: response.CodeBadRequest},
	{target: service.ErrPaymentTypeInvalid, code: response.CodeBadRequest},
	{target: service.ErrUserNotFound, code: response.CodeNotFound},
}

var rentalErrorRules = []mappedHandlerError{
	{target: service.ErrRentalNotFound, code: response.CodeNotFound},
	{target: service.ErrRentalAlreadyReturned, code: response.CodeBadRequest},
	{target: service.ErrRentalDateInvalid, code: response.CodeBadRequest},
	{target: service.ErrOrderNotFound, code: response.CodeNotFound},
}

var replacementErrorRules = []mappedHandlerError{
	{target: service.ErrReplacementNotFound, code: response.CodeNotFound},
	{target: service.ErrReplacementDuplicate, code: response.CodeBadRequest},
	{target: service.ErrReplacementStatusInvalid, code: response.CodeBadRequest},
	{target: service.ErrReplacementNotAssignee, code: response.CodeForbidden},
	{target: service.ErrReplacementNotRequester, code: response.CodeForbidden},
	{target: service.ErrStaffInvalid, code: response.CodeBadRequest},
	{target: service.ErrUnitNotFound, code: response.CodeNotFound},
	{target: service.ErrUserNotFound, code: response.CodeNotFound},
}

var discountErrorRules = []mappedHandlerError{
	{target: service.ErrDiscountNotFound, code: response.CodeNotFound},
	{target: service.ErrDiscountInUse, code: response.CodeBadRequest},
	{target: service.ErrDiscountPercentInvalid, code: response.CodeBadRequest},
	{target: service.ErrDiscountDatesInvalid, code: response.CodeBadRequest},
}

var paymentErrorRules = []mappedHandlerError{
	{target: service.ErrPaymentNotFound, code: response.CodeNotFound},
	{target: service.ErrPaymentNotPending, code: response.CodeBadRequest},
	{target: service.ErrPaymentTypeInvalid, code: response.CodeBadRequest},
	{target: service.ErrOrderNotFound, code: response.CodeNotFound},
}

var inventoryErrorRules = []mappedHandlerError{
	{target: service.ErrUnitNotFound, code: response.CodeNotFound},
	{target: service.ErrItemNotFound, code: response.CodeNotFound},
	{target: service.ErrStatusTransitionInvalid, code: response.CodeBadRequest},
	{target: service.ErrOrderQuantityInvalid, code: response.CodeBadRequest},
}

var notificationErrorRules = []mappedHandlerError{
	{target: service.ErrNotificationNotFound, code: response.CodeNotFound},
}

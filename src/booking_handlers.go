package main

import (
	"errors"
	"log"
	"net/http"
	"rbs/src/common"
	"rbs/src/db"
	"rbs/src/lib"
	"rbs/src/models"
	"rbs/src/models/scopes"
	"rbs/src/types"
	"rbs/src/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
)

// respondEngineError maps the engine's error taxonomy onto transport codes.
// The engine itself never shapes HTTP responses.
func respondEngineError(ctx *gin.Context, err error) {
	var verr *types.ValidationError
	var conflict *types.SlotConflictError
	switch {
	case errors.As(err, &conflict):
		ctx.JSON(http.StatusConflict, gin.H{"error": conflict.Error(), "conflict": conflict})
	case errors.Is(err, types.ErrAlreadyCancelled):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, types.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, types.ErrInvalidInterval):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, types.ErrResourceUnavailable), errors.Is(err, types.ErrAssignmentMismatch):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.As(err, &verr):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "fields": verr.Fields})
	default:
		log.Printf("Could not complete request: %s\n", err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error while processing request"})
	}
}

func tenantFromContext(ctx *gin.Context) *uuid.UUID {
	raw := ctx.GetString("tenant_id")
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

func bookingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/bookings", func(ctx *gin.Context) {
			var body types.CreateBookingRequestBody
			if err := ctx.ShouldBindBodyWith(&body, binding.JSON); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}

			idemKey := ctx.GetHeader("X-Idempotency-Key")
			if idemKey != "" {
				if bookingId, ok := lib.LookupBookingRequest(ctx, idemKey); ok {
					ctx.JSON(http.StatusOK, gin.H{"data": gin.H{"id": bookingId}, "deduplicated": true})
					return
				}
			}

			// The status hint may sit under a different key depending on
			// which UI sent the request.
			hint := body.Status
			if raw, ok := ctx.Get(gin.BodyBytesKey); ok {
				if rawBytes, ok := raw.([]byte); ok {
					if h := common.ResolveStatusHint(rawBytes); h != "" {
						hint = h
					}
				}
			}

			items := make([]common.BookingItemParams, 0, len(body.Items))
			for _, it := range body.Items {
				start, err := utils.ParseBookingTime("start_time", it.StartTime)
				if err != nil {
					respondEngineError(ctx, err)
					return
				}
				end, err := utils.ParseBookingTime("end_time", it.EndTime)
				if err != nil {
					respondEngineError(ctx, err)
					return
				}
				items = append(items, common.BookingItemParams{
					CourtID:   it.CourtID,
					ServiceID: it.ServiceID,
					StartTime: start,
					EndTime:   end,
				})
			}

			booking, err := common.CreateBooking(common.CreateBookingParams{
				TenantID:     tenantFromContext(ctx),
				BranchID:     body.BranchID,
				ActorID:      ctx.GetUint("id"),
				Items:        items,
				Participants: body.Participants,
				Currency:     body.Currency,
				StatusHint:   hint,
				Discount:     body.Discount,
				Tax:          body.Tax,
				Fee:          body.Fee,
				PromoCode:    body.PromoCode,
			})
			if err != nil {
				respondEngineError(ctx, err)
				return
			}
			if idemKey != "" {
				lib.RememberBookingRequest(ctx, idemKey, booking.ID)
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": booking})
		}).
		GET("/bookings", func(ctx *gin.Context) {
			var filters types.BookingQueryFilters
			if err := ctx.ShouldBindQuery(&filters); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			q := db.
				Model(&models.Booking{}).
				Scopes(scopes.WithTenant(tenantFromContext(ctx)))
			if filters.Branch > 0 {
				q = q.Scopes(scopes.WithBranch(filters.Branch))
			}
			if filters.Status != "" {
				q = q.Where(&models.Booking{Status: types.BookingStatus(filters.Status)})
			}
			var bookings []models.Booking
			if err := q.Preload("Items").Find(&bookings).Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": bookings, "count": len(bookings)})
		}).
		GET("/bookings/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var booking models.Booking
			err := db.
				Model(&models.Booking{}).
				Scopes(scopes.WithID(params.ID), scopes.WithTenant(tenantFromContext(ctx))).
				Preload("Items").
				Preload("Items.Court").
				Preload("Participants").
				First(&booking).
				Error
			if err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": booking})
		}).
		PUT("/bookings/:id/cancel", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.CancelBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil && err.Error() != "EOF" {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			booking, err := common.CancelBooking(params.ID, ctx.GetUint("id"), body.Reason)
			if err != nil {
				respondEngineError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": booking})
		}).
		GET("/bookings/:id/changes", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var changes []models.ChangeLog
			err := db.
				Model(&models.ChangeLog{}).
				Where(&models.ChangeLog{EntityKind: common.ENTITY_BOOKING, EntityID: params.ID}).
				Order("created_at asc").
				Find(&changes).
				Error
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": changes, "count": len(changes)})
		})
	return g
}

package main

import (
	"net/http"
	"rbs/src/common"
	"rbs/src/db"
	"rbs/src/models"
	"rbs/src/models/scopes"
	"rbs/src/types"
	"rbs/src/utils"
	"time"

	"github.com/gin-gonic/gin"
)

func trainerBookingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/trainer-bookings", func(ctx *gin.Context) {
			var body types.CreateTrainerBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			start, err := utils.ParseBookingTime("start_time", body.StartTime)
			if err != nil {
				respondEngineError(ctx, err)
				return
			}
			end, err := utils.ParseBookingTime("end_time", body.EndTime)
			if err != nil {
				respondEngineError(ctx, err)
				return
			}
			booking, err := common.CreateTrainerBooking(common.CreateTrainerBookingParams{
				TenantID:   tenantFromContext(ctx),
				BranchID:   body.BranchID,
				TrainerID:  body.TrainerID,
				ActorID:    ctx.GetUint("id"),
				StartTime:  start,
				EndTime:    end,
				HourlyRate: body.HourlyRate,
				Total:      body.Total,
				Currency:   body.Currency,
				Status:     body.Status,
			})
			if err != nil {
				respondEngineError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": booking})
		}).
		GET("/trainer-bookings", func(ctx *gin.Context) {
			db := db.GetDb()
			q := db.
				Model(&models.TrainerBooking{}).
				Scopes(scopes.WithTenant(tenantFromContext(ctx)))
			var bookings []models.TrainerBooking
			if err := q.Preload("Trainer").Find(&bookings).Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": bookings, "count": len(bookings)})
		}).
		GET("/trainer-bookings/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var booking models.TrainerBooking
			err := db.
				Model(&models.TrainerBooking{}).
				Scopes(scopes.WithID(params.ID), scopes.WithTenant(tenantFromContext(ctx))).
				Preload("Trainer").
				First(&booking).
				Error
			if err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "trainer booking not found"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": booking})
		}).
		PATCH("/trainer-bookings/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.UpdateTrainerBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var start, end *time.Time
			if body.StartTime != nil {
				t, err := utils.ParseBookingTime("start_time", *body.StartTime)
				if err != nil {
					respondEngineError(ctx, err)
					return
				}
				start = &t
			}
			if body.EndTime != nil {
				t, err := utils.ParseBookingTime("end_time", *body.EndTime)
				if err != nil {
					respondEngineError(ctx, err)
					return
				}
				end = &t
			}
			booking, err := common.UpdateTrainerBooking(params.ID, common.UpdateTrainerBookingParams{
				ActorID:    ctx.GetUint("id"),
				BranchID:   body.BranchID,
				TrainerID:  body.TrainerID,
				StartTime:  start,
				EndTime:    end,
				HourlyRate: body.HourlyRate,
				Total:      body.Total,
				Currency:   body.Currency,
				Status:     body.Status,
			})
			if err != nil {
				respondEngineError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": booking})
		}).
		DELETE("/trainer-bookings/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			removed, err := common.RemoveTrainerBooking(params.ID, ctx.GetUint("id"))
			if err != nil {
				respondEngineError(ctx, err)
				return
			}
			if removed == nil {
				ctx.Status(http.StatusNoContent)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": removed})
		})
	return g
}

package main

import (
	"net/http"
	"rbs/src/db"
	"rbs/src/models"
	"rbs/src/types"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
)

// Catalog CRUD carries no conflict semantics; the engine only reads these
// rows.
func catalogHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/branches", func(ctx *gin.Context) {
			var body types.CreateBranchRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			branch := models.Branch{
				Name:      body.Name,
				Slug:      slug.Make(body.Name),
				Timezone:  body.Timezone,
				CompanyID: tenantFromContext(ctx),
			}
			db := db.GetDb()
			if err := db.Create(&branch).Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": branch})
		}).
		GET("/branches", func(ctx *gin.Context) {
			db := db.GetDb()
			var branches []models.Branch
			err := db.
				Model(&models.Branch{}).
				Where(&models.Branch{CompanyID: tenantFromContext(ctx)}).
				Find(&branches).
				Error
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": branches, "count": len(branches)})
		}).
		POST("/courts", func(ctx *gin.Context) {
			var body types.CreateCourtRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			court := models.Court{
				BranchID:   body.BranchID,
				Name:       body.Name,
				Slug:       slug.Make(body.Name),
				Surface:    body.Surface,
				HourlyRate: body.HourlyRate,
				Currency:   body.Currency,
				TenantID:   tenantFromContext(ctx),
			}
			db := db.GetDb()
			if err := db.Create(&court).Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": court})
		}).
		GET("/courts", func(ctx *gin.Context) {
			db := db.GetDb()
			q := db.Model(&models.Court{})
			if branchId := ctx.Query("branch"); branchId != "" {
				q = q.Where("branch_id = ?", branchId)
			}
			var courts []models.Court
			if err := q.Find(&courts).Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": courts, "count": len(courts)})
		}).
		PUT("/courts/:id/status", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.UpdateCourtStatusRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			err := db.
				Model(&models.Court{}).
				Where(&models.Court{ID: params.ID}).
				Update("status", body.Status).
				Error
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusNoContent)
		}).
		POST("/trainers", func(ctx *gin.Context) {
			var body types.CreateTrainerRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			trainer := models.Trainer{
				Name:       body.Name,
				Email:      body.Email,
				BranchID:   body.BranchID,
				HourlyRate: body.HourlyRate,
				Currency:   body.Currency,
				TenantID:   tenantFromContext(ctx),
			}
			db := db.GetDb()
			if err := db.Create(&trainer).Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": trainer})
		}).
		GET("/trainers", func(ctx *gin.Context) {
			db := db.GetDb()
			var trainers []models.Trainer
			err := db.
				Model(&models.Trainer{}).
				Where(&models.Trainer{TenantID: tenantFromContext(ctx)}).
				Find(&trainers).
				Error
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": trainers, "count": len(trainers)})
		}).
		POST("/services", func(ctx *gin.Context) {
			var body types.CreateServiceRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			service := models.ServiceOffering{
				Name:     body.Name,
				Kind:     body.Kind,
				TenantID: tenantFromContext(ctx),
			}
			db := db.GetDb()
			if err := db.Create(&service).Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": service})
		}).
		GET("/services", func(ctx *gin.Context) {
			db := db.GetDb()
			var services []models.ServiceOffering
			err := db.
				Model(&models.ServiceOffering{}).
				Where(&models.ServiceOffering{TenantID: tenantFromContext(ctx)}).
				Find(&services).
				Error
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": services, "count": len(services)})
		})
	return g
}

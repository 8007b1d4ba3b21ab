package boot

import (
	"log"
	"rbs/src/common"
	"rbs/src/db"
	"rbs/src/lib"
	"rbs/src/models"
	"time"

	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.Branch{},
		&models.Court{},
		&models.Trainer{},
		&models.ServiceOffering{},
		&models.Booking{},
		&models.BookingItem{},
		&models.BookingParticipant{},
		&models.TrainerBooking{},
		&models.ChangeLog{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return db
}

// InitScheduler starts the background sweep that expires pending bookings
// whose hold window has lapsed, releasing their slots.
func InitScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("An error has occurred. Check logs for info")
		return
	}
	jid, err := lib.CreateCronJob(func() {
		if err := common.ExpirePendingBookings(); err != nil {
			log.Printf("Error expiring pending bookings: %s\n", err.Error())
		}
	}, 5*time.Minute)
	if err != nil {
		log.Printf("Error scheduling expiry sweep: %s\n", err.Error())
		return
	}
	log.Printf("Scheduled booking expiry sweep: %s\n", *jid)
	sched.Start()
}

func StopScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("Error retrieving Scheduler. Check logs for info")
		return
	}
	err = sched.Shutdown()
	if err != nil {
		log.Println("An error has occurred while shutting down Scheduler. Check logs for info")
		return
	}
}

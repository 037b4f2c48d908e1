package repository

import (
	bookingRepo "servicehub/database/repository/booking"
	serviceRepo "servicehub/database/repository/service"
)

// Re-export the ServiceRepository interface and constructor.
type ServiceRepository = serviceRepo.ServiceRepository

var NewMongoServiceRepo = serviceRepo.NewMongoServiceRepo

// Re-export the BookingRepository interface and constructor.
type BookingRepository = bookingRepo.BookingRepository

type ServiceRatings = bookingRepo.ServiceRatings

var NewMongoBookingRepo = bookingRepo.NewMongoBookingRepo

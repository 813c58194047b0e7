package routes

import (
	"doctospeech/handlers"
	"doctospeech/middleware"
	"doctospeech/models"

	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers the client side: directory, sessions, kids
// and content.
func RegisterUserRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle, rc RouteConfig) {
	user := api.Group("/user")
	{
		// Content is readable anonymously; premium callers see more.
		user.GET("/resources", rc.optionalAuth(), hb.Content.ListResources)
		user.GET("/detailResource/:id", rc.optionalAuth(), hb.Content.ResourceDetail)

		protected := user.Group("", rc.auth())
		protected.GET("/home", hb.Booking.ClientHome)
		protected.GET("/filter-therapist", hb.Therapist.FilterTherapists)
		protected.PUT("/updateLocation", hb.Auth.UpdateLocation)
		protected.GET("/therapistDetails/:therapistId", hb.Therapist.GetTherapistDetails)
		protected.GET("/therapistSlots/:therapistId", hb.Booking.ResolveAvailability)

		protected.POST("/session", middleware.RequireCapability(models.CanRequestBooking), hb.Booking.CreateBooking)
		protected.GET("/session", hb.Booking.ListMyBookings)
		protected.GET("/session/:id", hb.Booking.GetBookingDetail)
		protected.PUT("/session/:id", hb.Booking.MarkCompleted)
		protected.POST("/cancelBooking/:id", hb.Booking.CancelBooking)
		protected.POST("/reviewTherapist", middleware.RequireCapability(models.CanReview), hb.Auth.Review)
		protected.GET("/transactions", hb.Booking.ListTransactions)

		protected.GET("/kid", hb.Auth.ListKids)
		protected.POST("/kid", hb.Auth.AddKid)
		protected.DELETE("/kid/:id", hb.Auth.DeleteKid)

		protected.GET("/ebooks", hb.Content.ListEbooks)
	}
}

// RegisterTherapistRoutes registers the therapist dashboard and booking
// lifecycle endpoints.
func RegisterTherapistRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle, rc RouteConfig) {
	therapist := api.Group("/therapist", rc.auth())
	{
		therapist.GET("/home", hb.Booking.TherapistHome)
		therapist.PUT("/updateLocation", hb.Auth.UpdateLocation)
		therapist.GET("/bookingDetail/:bookingId", hb.Booking.GetBookingDetail)
		therapist.GET("/myBookings", hb.Booking.ListMyBookings)
		therapist.PUT("/completeBooking/:bookingId", hb.Booking.MarkCompleted)
		therapist.POST("/reviewUser", middleware.RequireCapability(models.CanReview), hb.Auth.Review)
		therapist.GET("/listEarnings", hb.Booking.TherapistEarnings)
		therapist.GET("/certifications", hb.Therapist.ListCertifications)
		therapist.POST("/certifications", middleware.RequireCapability(models.CanManageCredentials), hb.Therapist.AddCertification)
		therapist.DELETE("/certifications/:id", middleware.RequireCapability(models.CanManageCredentials), hb.Therapist.DeleteCertification)

		respond := therapist.Group("", middleware.RequireCapability(models.CanRespondToBooking))
		respond.PUT("/respondBooking/:bookingId", hb.Booking.RespondToBooking)
		respond.PUT("/cancelBooking/:bookingId", hb.Booking.TherapistCancelBooking)
	}
}

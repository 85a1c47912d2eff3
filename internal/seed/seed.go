// Package seed ships the canonical monthly promo-task templates for each
// supported business type. The services treat these rows as read-only; Apply
// inserts them once on an empty database.
package seed

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"promo-planner/internal/model"
)

// templateDate builds a template due date. Only the day-of-month carries
// meaning; year and month are placeholders replaced at instantiation.
func templateDate(day int) time.Time {
	return time.Date(2024, time.January, day, 0, 0, 0, 0, time.UTC)
}

// Templates returns every canonical template, grouped by business type.
func Templates() []model.TaskTemplate {
	return []model.TaskTemplate{
		{BusinessType: model.BusinessTypeLawFirm, Title: "Publish a legal insights article", Description: "Write a short article on a topic your clients ask about and post it on your site.", DueDate: templateDate(5), IsTemplate: true},
		{BusinessType: model.BusinessTypeLawFirm, Title: "Request client reviews", Description: "Ask two recently closed clients for a Google review.", DueDate: templateDate(12), IsTemplate: true},
		{BusinessType: model.BusinessTypeLawFirm, Title: "Update your Google Business profile", Description: "Refresh hours, photos and practice areas on your listing.", DueDate: templateDate(18), IsTemplate: true},
		{BusinessType: model.BusinessTypeLawFirm, Title: "Share an anonymized case study", Description: "Post a short before/after story showing how you helped a client.", DueDate: templateDate(25), IsTemplate: true},

		{BusinessType: model.BusinessTypeWebDesigner, Title: "Showcase a recent project", Description: "Post screenshots and a short write-up of your latest launch.", DueDate: templateDate(3), IsTemplate: true},
		{BusinessType: model.BusinessTypeWebDesigner, Title: "Post a design tip", Description: "Share one practical tip your audience can apply today.", DueDate: templateDate(10), IsTemplate: true},
		{BusinessType: model.BusinessTypeWebDesigner, Title: "Refresh your portfolio homepage", Description: "Swap in your strongest recent work and update testimonials.", DueDate: templateDate(17), IsTemplate: true},
		{BusinessType: model.BusinessTypeWebDesigner, Title: "Reach out to past clients", Description: "Check in with two former clients about redesign or maintenance needs.", DueDate: templateDate(24), IsTemplate: true},

		{BusinessType: model.BusinessTypeBeautician, Title: "Post before & after photos", Description: "Share your best transformation from the past month (with permission).", DueDate: templateDate(4), IsTemplate: true},
		{BusinessType: model.BusinessTypeBeautician, Title: "Run a mid-month booking promotion", Description: "Offer a small discount for slow weekday slots.", DueDate: templateDate(14), IsTemplate: true},
		{BusinessType: model.BusinessTypeBeautician, Title: "Share a skincare tip video", Description: "Record a 30-second tip clients can do at home.", DueDate: templateDate(20), IsTemplate: true},
		{BusinessType: model.BusinessTypeBeautician, Title: "Feature a client testimonial", Description: "Post a quote from a happy client alongside their result.", DueDate: templateDate(27), IsTemplate: true},

		{BusinessType: model.BusinessTypeOnlineSales, Title: "Launch a product spotlight", Description: "Pick one product and feature it across your channels this month.", DueDate: templateDate(2), IsTemplate: true},
		{BusinessType: model.BusinessTypeOnlineSales, Title: "Send the monthly newsletter", Description: "Round up new arrivals, promos and one customer story.", DueDate: templateDate(9), IsTemplate: true},
		{BusinessType: model.BusinessTypeOnlineSales, Title: "Review ad campaign performance", Description: "Pause what is not converting and shift budget to what is.", DueDate: templateDate(16), IsTemplate: true},
		{BusinessType: model.BusinessTypeOnlineSales, Title: "Post customer reviews", Description: "Share three recent reviews as social proof.", DueDate: templateDate(23), IsTemplate: true},

		{BusinessType: model.BusinessTypeFitnessInstructor, Title: "Share a workout of the month", Description: "Post a routine followers can try without equipment.", DueDate: templateDate(1), IsTemplate: true},
		{BusinessType: model.BusinessTypeFitnessInstructor, Title: "Post a client progress story", Description: "Celebrate a client milestone (with permission).", DueDate: templateDate(8), IsTemplate: true},
		{BusinessType: model.BusinessTypeFitnessInstructor, Title: "Host a free mini session", Description: "Run a short open class or live stream to attract new clients.", DueDate: templateDate(15), IsTemplate: true},
		{BusinessType: model.BusinessTypeFitnessInstructor, Title: "Promote next month's schedule", Description: "Publish the upcoming class schedule and open bookings.", DueDate: templateDate(22), IsTemplate: true},
	}
}

// Apply inserts the canonical templates unless the table already has rows.
// Safe to call on every boot.
func Apply(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&model.TaskTemplate{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count templates: %w", err)
	}
	if count > 0 {
		return nil
	}

	templates := Templates()
	if err := db.WithContext(ctx).Create(&templates).Error; err != nil {
		return fmt.Errorf("seed templates: %w", err)
	}

	log.Printf("[info] seeded %d task templates", len(templates))
	return nil
}

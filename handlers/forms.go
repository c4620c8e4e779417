package handlers

import (
	"strconv"
	"strings"
	"time"

	"lexify/models"
	"lexify/utils"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// lawyerProfileForm reads the onboarding fields shared by signup and /remaining/lawyer.
func lawyerProfileForm(c *gin.Context) (models.LawyerProfile, error) {
	profile := models.LawyerProfile{
		City:           c.PostForm("city"),
		RegistrationID: c.PostForm("registration_id"),
	}
	if raw := strings.TrimSpace(c.PostForm("dob")); raw != "" {
		dob, err := time.Parse(dateLayout, raw)
		if err != nil {
			return profile, utils.NewValidationError("dob", "must be YYYY-MM-DD")
		}
		profile.DateOfBirth = &dob
	}
	if raw := strings.TrimSpace(c.PostForm("experience")); raw != "" {
		years, err := strconv.Atoi(raw)
		if err != nil {
			return profile, utils.NewValidationError("experience", "must be a whole number")
		}
		profile.Experience = years
	}
	return profile, nil
}

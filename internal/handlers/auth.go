package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"ergoshop/internal/account"
	"ergoshop/internal/middleware"
)

type registerRequest struct {
	FirstName       string `json:"firstName" binding:"required"`
	LastName        string `json:"lastName" binding:"required"`
	DOB             string `json:"dob" binding:"required"`
	Gender          string `json:"gender" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
	Email           string `json:"email" binding:"required"`
	TRN             string `json:"trn" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

type loginRequest struct {
	TRN      string `json:"trn" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type resetPasswordRequest struct {
	TRN         string `json:"trn" binding:"required"`
	DOB         string `json:"dob" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

func Register(registry *account.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /auth/register"
		defer handlePanic(c, route)

		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		acct, err := registry.Register(account.RegisterInput{
			FirstName:       req.FirstName,
			LastName:        req.LastName,
			DOB:             req.DOB,
			Gender:          req.Gender,
			Phone:           req.Phone,
			Email:           req.Email,
			TRN:             req.TRN,
			Password:        req.Password,
			ConfirmPassword: req.ConfirmPassword,
		})
		if err != nil {
			var vErr account.ValidationError
			if errors.As(err, &vErr) {
				c.JSON(http.StatusBadRequest, gin.H{
					"error":  "validation failed",
					"field":  vErr.Field,
					"detail": vErr.Error(),
				})
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "store error")
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "registration successful for " + acct.FirstName + " " + acct.LastName,
			"trn":     acct.TRN,
		})
	}
}

func Login(registry *account.Registry, secret string, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /auth/login"
		defer handlePanic(c, route)

		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		acct, err := registry.Login(req.TRN, req.Password)
		if err != nil {
			if errors.Is(err, account.ErrAccountLocked) {
				respondWithError(c, http.StatusForbidden, route, "account is locked")
				return
			}
			var credErr account.InvalidCredentialsError
			if errors.As(err, &credErr) {
				c.JSON(http.StatusUnauthorized, gin.H{
					"error":             "incorrect TRN or password",
					"attemptsRemaining": credErr.AttemptsRemaining,
				})
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "store error")
			return
		}

		token, err := issueSessionToken(acct.TRN, secret, ttl)
		if err != nil {
			log.Println("[AUTH] [ERROR] token generation failed:", err)
			respondWithError(c, http.StatusInternalServerError, route, "token generation failed")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"accessToken": token,
			"user": gin.H{
				"firstName": acct.FirstName,
				"lastName":  acct.LastName,
				"email":     acct.Email,
				"trn":       acct.TRN,
			},
		})
	}
}

func ResetPassword(registry *account.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /auth/reset-password"
		defer handlePanic(c, route)

		var req resetPasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		err := registry.ResetPassword(req.TRN, req.DOB, req.NewPassword)
		switch {
		case errors.Is(err, account.ErrAccountNotFound):
			respondWithError(c, http.StatusNotFound, route, "TRN not found")
		case errors.Is(err, account.ErrVerificationFailed):
			respondWithError(c, http.StatusForbidden, route, "DOB does not match our records")
		case errors.Is(err, account.ErrPasswordTooShort):
			respondWithError(c, http.StatusBadRequest, route, "password must be at least 8 characters")
		case err != nil:
			respondWithError(c, http.StatusInternalServerError, route, "store error")
		default:
			c.JSON(http.StatusOK, gin.H{"message": "password reset successful, you can now login"})
		}
	}
}

// Logout ends the caller's session: the client drops the token and the
// transient attempt counter for the TRN is discarded.
func Logout(registry *account.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /auth/logout"
		defer handlePanic(c, route)

		trn := c.GetString(middleware.ContextTRN)
		if err := registry.EndSession(trn); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "store error")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "logged out"})
	}
}

func issueSessionToken(trn, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"trn": trn,
		"exp": time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

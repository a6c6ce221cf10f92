package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"tzlon-api/internal/conversion"
	"tzlon-api/internal/models"

	"github.com/gin-gonic/gin"
)

// ConvertHandler handles single conversion requests
type ConvertHandler struct {
	service ConversionService
}

// Service interface for dependency injection
type ConversionService interface {
	LongitudeToTimezone(context.Context, models.LongitudeInput) (*models.Conversion, error)
	TimezoneToLongitude(context.Context, models.TimezoneInput) (*models.Conversion, error)
	Meridians() []models.Meridian
}

// NewConvertHandler creates a new convert handler
func NewConvertHandler(svc ConversionService) *ConvertHandler {
	return &ConvertHandler{service: svc}
}

// Longitude handles GET /convert/longitude requests
//
//	@Summary	Convert a longitude to its UTC offset
//	@Param		direction	query		string	false	"E or W (default E)"
//	@Param		degrees		query		int		true	"degrees, 0-180"
//	@Param		minutes		query		int		false	"minutes, 0-59"
//	@Param		seconds		query		number	false	"seconds, 0-60"
//	@Success	200			{object}	models.Conversion
//	@Failure	400			{object}	map[string]string
//	@Router		/convert/longitude [get]
func (h *ConvertHandler) Longitude(c *gin.Context) {
	if c.Query("degrees") == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'degrees'"})
		return
	}

	var (
		in  = models.LongitudeInput{Direction: conversion.ParseDirection(c.Query("direction"))}
		err error
	)
	if in.Degrees, err = queryInt(c, "degrees"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if in.Minutes, err = queryInt(c, "minutes"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if in.Seconds, err = queryFloat(c, "seconds"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.LongitudeToTimezone(c.Request.Context(), in)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Timezone handles GET /convert/timezone requests
//
//	@Summary	Convert a UTC offset to its longitude
//	@Param		sign	query		string	true	"+ or -"
//	@Param		hours	query		int		true	"hours, 0-12"
//	@Param		minutes	query		int		false	"minutes, 0-59"
//	@Param		seconds	query		number	false	"seconds, 0-60"
//	@Success	200		{object}	models.Conversion
//	@Failure	400		{object}	map[string]string
//	@Router		/convert/timezone [get]
func (h *ConvertHandler) Timezone(c *gin.Context) {
	if c.Query("sign") == "" || c.Query("hours") == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'sign' and 'hours'"})
		return
	}

	raw := c.Query("sign")
	if strings.TrimSpace(raw) == "" {
		// an unescaped "+" in a query string arrives as a space
		raw = "+"
	}
	sign, err := conversion.ParseSign(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in := models.TimezoneInput{Sign: sign}
	if in.Hours, err = queryInt(c, "hours"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if in.Minutes, err = queryInt(c, "minutes"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if in.Seconds, err = queryFloat(c, "seconds"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.TimezoneToLongitude(c.Request.Context(), in)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Meridians handles GET /meridians requests
//
//	@Summary	Reference meridians every 15°
//	@Success	200	{array}	models.Meridian
//	@Router		/meridians [get]
func (h *ConvertHandler) Meridians(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Meridians())
}

// queryInt reads an optional integer query parameter; absent means 0.
func queryInt(c *gin.Context, name string) (int, error) {
	s := c.Query(name)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s format", name)
	}
	return v, nil
}

// queryFloat reads an optional float query parameter; absent means 0.
func queryFloat(c *gin.Context, name string) (float64, error) {
	s := c.Query(name)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s format", name)
	}
	return v, nil
}

// writeServiceError maps out-of-range input to 400 and everything else to 500.
func writeServiceError(c *gin.Context, err error) {
	var ice *conversion.InvalidComponentError
	if errors.As(err, &ice) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ice.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

package web

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"task-planner/internal/errors"

	"github.com/gin-gonic/gin"
)

func (s *Server) yearCalendar(c *gin.Context) {
	p := s.page()
	p.Year = s.now().Year()
	p.Months = monthLinks(s.labels)
	s.render(c, http.StatusOK, "year_calendar.html", p)
}

func (s *Server) readCalendar(c *gin.Context) {
	const tmpl = "show_calendar.html"

	rawYear, rawMonth := c.Param("year"), c.Param("month")
	year, errY := strconv.Atoi(rawYear)
	month, errM := strconv.Atoi(rawMonth)
	if errY != nil || errM != nil {
		s.reject(c, http.StatusUnprocessableEntity, tmpl, fmt.Sprintf(s.labels.WrongDate, rawYear+"-"+rawMonth))
		return
	}

	cal, err := s.services.CalendarService.MonthCalendar(c.Request.Context(), year, month)
	if err != nil {
		message := ""
		if errors.IsDateError(err) {
			message = fmt.Sprintf(s.labels.WrongDate, rawYear+"-"+rawMonth)
		}
		s.fail(c, tmpl, err, message)
		return
	}

	p := s.page()
	p.Year = year
	p.MonthName = s.labels.MonthName(time.Month(month))
	p.Calendar = cal
	s.render(c, http.StatusOK, tmpl, p)
}

package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/skillstat/api/http/presenter"
	"github.com/artem13815/skillstat/pkg/skills"
)

type SkillsHandler struct {
	uc skills.UseCase
}

func NewSkillsHandler(uc skills.UseCase) *SkillsHandler { return &SkillsHandler{uc: uc} }

// @Summary     Частота навыков по вакансиям
// @Description Загружает вакансии, фильтрует по роли (если задана) и считает, в скольких вакансиях встречается каждый навык словаря.
// @Tags        skills
// @Produce     json
// @Param       role  query string false "Роль для фильтрации, например data analyst"
// @Param       scale query int    false "Во сколько раз размножить тестовый набор (по умолчанию 1)"
// @Success     200 {object} skills.Summary
// @Router      /skills [get]
func (h *SkillsHandler) Get(c *fiber.Ctx) error {
	role := strings.TrimSpace(c.Query("role"))
	sum := h.uc.Analyze(c.UserContext(), skills.Query{
		Role:  role,
		Scale: parseScale(c.Query("scale")),
	})
	return presenter.JSON(c, http.StatusOK, sum)
}

// parseScale: отсутствующее, нечисловое или неположительное значение даёт 1.
func parseScale(v string) int {
	v = strings.TrimSpace(v)
	if v == "" {
		return 1
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

package handler

import (
	"net/http"

	"github.com/MatevzKlancar/phyacc/internal/logic"
	"github.com/gin-gonic/gin"
)

type EligibilityHandler struct {
	eligibilityLogic *logic.EligibilityLogic
}

func NewEligibilityHandler(eligibilityLogic *logic.EligibilityLogic) *EligibilityHandler {
	return &EligibilityHandler{eligibilityLogic: eligibilityLogic}
}

// CheckEligibility 检查钱包的项目提交资格
func (h *EligibilityHandler) CheckEligibility(c *gin.Context) {
	result, err := h.eligibilityLogic.CheckEligibility(c.Request.Context(), c.Param("address"))
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", result)
}

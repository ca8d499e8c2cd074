package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response định nghĩa cấu trúc response
type Response struct {
	Code       int         `json:"code"`
	Mess       string      `json:"mess"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination định nghĩa cấu trúc phân trang
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

func write(c *gin.Context, status, code int, mess string, data interface{}, pagination *Pagination) {
	c.JSON(status, Response{
		Code:       code,
		Mess:       mess,
		Data:       data,
		Pagination: pagination,
	})
}

// Success trả về response thành công
func Success(c *gin.Context, data interface{}) {
	write(c, http.StatusOK, 1, "Thành công", data, nil)
}

// SuccessWithPagination trả về response thành công có phân trang
func SuccessWithPagination(c *gin.Context, data interface{}, page, limit, total int) {
	write(c, http.StatusOK, 1, "Thành công", data, &Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
	})
}

// Error trả về response lỗi
func Error(c *gin.Context, code int, message string) {
	write(c, http.StatusBadRequest, code, message, nil, nil)
}

// ServerError trả về response lỗi server
func ServerError(c *gin.Context) {
	write(c, http.StatusInternalServerError, 0, "Lỗi server", nil, nil)
}

// Unauthorized trả về response chưa xác thực
func Unauthorized(c *gin.Context) {
	write(c, http.StatusUnauthorized, 0, "Chưa xác thực", nil, nil)
}

// Forbidden trả về response không có quyền
func Forbidden(c *gin.Context) {
	write(c, http.StatusForbidden, 0, "Không có quyền truy cập", nil, nil)
}

// NotFound trả về response không tìm thấy
func NotFound(c *gin.Context) {
	write(c, http.StatusNotFound, 0, "Không tìm thấy", nil, nil)
}

// BadRequest trả về response lỗi bad request
func BadRequest(c *gin.Context, message string) {
	write(c, http.StatusBadRequest, 0, message, nil, nil)
}

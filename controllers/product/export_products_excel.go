package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/ductho-dev/ecommerce-api/models"
	"github.com/ductho-dev/ecommerce-api/pkg/apperr"
)

// ExportProductsToExcel streams the catalog as an .xlsx download.
// GET /api/products/export
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Category").Preload("Tags").Find(&products).Error; err != nil {
			apperr.Respond(c, apperr.Internal("failed to fetch products"))
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			apperr.Respond(c, apperr.Internal("failed to create Excel sheet"))
			return
		}

		headers := []string{
			"ID", "Name", "Slug", "Category", "Price", "Discount",
			"Featured", "Stock", "Tags", "CreatedAt", "UpdatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()

			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Slug)
			if p.Category != nil {
				row.AddCell().SetValue(p.Category.Name)
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.Discount)
			row.AddCell().SetValue(p.Featured)
			row.AddCell().SetValue(p.Stock)

			var tagNames []string
			for _, tag := range p.Tags {
				tagNames = append(tagNames, tag.Name)
			}
			row.AddCell().SetValue(strings.Join(tagNames, ","))

			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(p.UpdatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
	}
}

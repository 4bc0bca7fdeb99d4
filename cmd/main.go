package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/deepakshresthadhd-design/Group/config"
	"github.com/deepakshresthadhd-design/Group/internal/delivery"
	"github.com/deepakshresthadhd-design/Group/internal/i18n"
	"github.com/deepakshresthadhd-design/Group/internal/repository"
	"github.com/deepakshresthadhd-design/Group/internal/usecase"
)

// HTML content for the test page
const htmlTestPageContent = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Group Mandu Store Service</title>
    <style>
        body { font-family: Helvetica, Arial, sans-serif; line-height: 1.6; padding: 20px; background-color: #f9f9f9; color: #333; }
        h1, h2 { border-bottom: 1px solid #ccc; padding-bottom: 5px; }
        ul { list-style: none; padding-left: 0; }
        li { margin-bottom: 15px; background-color: #fff; padding: 10px; border: 1px solid #eee; border-radius: 4px; }
        code { background-color: #e8e8e8; padding: 3px 6px; border-radius: 3px; font-family: Consolas, Monaco, monospace; }
        .method { font-weight: bold; display: inline-block; width: 60px; }
        .method-post { color: #49cc90; }
        .method-get { color: #61affe; }
        .method-put { color: #fca130; }
        .method-delete { color: #f93e3e; }
        a { color: #007bff; text-decoration: none; }
        a:hover { text-decoration: underline; }
    </style>
</head>
<body>
    <h1>Group Mandu Store Service</h1>
    <p>Single-shop retail management API: products, purchases, sales and customer udhar balances.</p>

    <h2>Dashboard & Reports</h2>
    <ul>
        <li><span class="method method-get">GET</span> <code><a href="/dashboard">/dashboard</a></code> - Today's totals, recent activity and low-stock alerts.</li>
        <li><span class="method method-get">GET</span> <code><a href="/reports?timeframe=all">/reports?timeframe=day|week|month|all</a></code> - Sales/purchases/profit summary.</li>
        <li><span class="method method-get">GET</span> <code>/reports/export/{inventory|sales|purchases|customers}?timeframe=...</code> - CSV download.</li>
    </ul>

    <h2>Inventory</h2>
    <ul>
        <li><span class="method method-get">GET</span> <code><a href="/products">/products</a></code> - List products. Supports <code>q</code> (name/category search).</li>
        <li><span class="method method-post">POST</span> <code>/products</code> - Add a product. Requires a non-empty <code>name</code>.</li>
        <li><span class="method method-put">PUT</span> <code>/products/{id}</code> - Edit a product.</li>
        <li><span class="method method-delete">DELETE</span> <code>/products/{id}</code> - Delete a product (history keeps its name snapshot).</li>
        <li><span class="method method-get">GET</span> <code>/products/{id}/history</code> - Merged purchase/sale stock movements.</li>
    </ul>

    <h2>Purchases</h2>
    <ul>
        <li><span class="method method-get">GET</span> <code><a href="/purchases">/purchases</a></code> - Search with <code>q</code>, <code>from</code>, <code>to</code>.</li>
        <li><span class="method method-post">POST</span> <code>/purchases</code> - Record intake; raises stock and updates the cost price.</li>
        <li><span class="method method-put">PUT</span> <code>/purchases/{id}</code> - Edit; reverses the old stock effect first.</li>
        <li><span class="method method-delete">DELETE</span> <code>/purchases/{id}</code> - Delete; lowers stock, floored at zero.</li>
    </ul>

    <h2>Sales</h2>
    <ul>
        <li><span class="method method-get">GET</span> <code><a href="/sales">/sales</a></code> - Search with <code>q</code>, <code>paymentType</code>, <code>customerId</code>, <code>from</code>, <code>to</code>.</li>
        <li><span class="method method-post">POST</span> <code>/sales</code> - Record a cash or credit (udhar) sale. No edit/delete.</li>
    </ul>

    <h2>Customers & Udhar</h2>
    <ul>
        <li><span class="method method-get">GET</span> <code><a href="/customers">/customers</a></code> - List customers with derived balances.</li>
        <li><span class="method method-post">POST</span> <code>/customers</code> - Add a customer (optional opening balance).</li>
        <li><span class="method method-put">PUT</span> <code>/customers/{id}</code> - Edit; the opening balance overwrites total credit.</li>
        <li><span class="method method-delete">DELETE</span> <code>/customers/{id}</code> - Delete customer and their sales history.</li>
        <li><span class="method method-post">POST</span> <code>/customers/{id}/payments</code> - Record an udhar repayment.</li>
    </ul>

    <h2>Settings</h2>
    <ul>
        <li><span class="method method-get">GET</span> <code><a href="/language">/language</a></code> / <span class="method method-put">PUT</span> <code>/language</code> - Active language (en/ne).</li>
        <li><span class="method method-get">GET</span> <code><a href="/translations">/translations</a></code> - Translation table; <code>/translations/{dotted.path}</code> for one key.</li>
        <li><span class="method method-get">GET</span> <code><a href="/store">/store</a></code> - Full ledger document (backup).</li>
        <li><span class="method method-post">POST</span> <code>/reset</code> - Clear all data. No undo.</li>
    </ul>
</body>
</html>
`

func serveTestPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(htmlTestPageContent))
}

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.LoadConfig(logger)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warnf("Unknown log level '%s', falling back to info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	logger.Info("Starting Store Service...")

	// --- Persistence ---
	storeRepo := repository.NewJSONStoreRepository(cfg.DataFile, logger)
	logger.Info("Store repository initialized.")

	// --- Use Case Layer ---
	ledgerUseCase := usecase.NewLedgerUseCase(storeRepo, logger)
	reportUseCase := usecase.NewReportUseCase(ledgerUseCase, logger)
	logger.Info("Use cases initialized.")

	// --- Handlers ---
	dashboardHandler := delivery.NewDashboardHandler(reportUseCase, logger)
	productHandler := delivery.NewProductHandler(ledgerUseCase, reportUseCase, logger)
	purchaseHandler := delivery.NewPurchaseHandler(ledgerUseCase, reportUseCase, logger)
	saleHandler := delivery.NewSaleHandler(ledgerUseCase, reportUseCase, logger)
	customerHandler := delivery.NewCustomerHandler(ledgerUseCase, logger)
	reportHandler := delivery.NewReportHandler(ledgerUseCase, reportUseCase, logger)
	languageHandler := delivery.NewLanguageHandler(i18n.Language(cfg.DefaultLang), logger)
	adminHandler := delivery.NewAdminHandler(ledgerUseCase, logger)
	logger.Info("Handlers initialized.")

	router := gin.Default()

	router.Use(gin.Recovery())

	router.Use(func(c *gin.Context) {
		logger.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"ip":     c.ClientIP(),
		}).Info("Request received")
		c.Next()
		logger.WithFields(logrus.Fields{
			"status": c.Writer.Status(),
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Info("Request completed")
	})

	// Route Registration

	router.GET("/", serveTestPage)
	logger.Info("Registered HTML test page route at /")

	dashboardHandler.RegisterRoutes(router)
	productHandler.RegisterRoutes(router)
	purchaseHandler.RegisterRoutes(router)
	saleHandler.RegisterRoutes(router)
	customerHandler.RegisterRoutes(router)
	reportHandler.RegisterRoutes(router)
	languageHandler.RegisterRoutes(router)
	adminHandler.RegisterRoutes(router)
	logger.Info("API Routes registered.")

	// Start Server
	logger.Infof("Starting server on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}

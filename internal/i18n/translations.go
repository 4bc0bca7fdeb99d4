// Package i18n holds the static English/Nepali translation table. Keys are
// dotted paths; an unresolved path is returned verbatim, which doubles as
// the missing-translation signal.
package i18n

import "strings"

type Language string

const (
	English Language = "en"
	Nepali  Language = "ne"
)

func (l Language) Valid() bool {
	return l == English || l == Nepali
}

// T resolves a dotted path for the given language. Unknown languages and
// unresolved paths fall back to the path itself.
func T(lang Language, path string) string {
	current, ok := translations[lang]
	if !ok {
		return path
	}
	keys := strings.Split(path, ".")
	for i, key := range keys {
		value, ok := current[key]
		if !ok {
			return path
		}
		if i == len(keys)-1 {
			if s, ok := value.(string); ok {
				return s
			}
			return path
		}
		next, ok := value.(map[string]interface{})
		if !ok {
			return path
		}
		current = next
	}
	return path
}

// Table returns the full nested table for a language (nil for unknown ones).
func Table(lang Language) map[string]interface{} {
	return translations[lang]
}

var translations = map[Language]map[string]interface{}{
	English: {
		"nav": map[string]interface{}{
			"dashboard": "Dashboard",
			"inventory": "Inventory",
			"purchases": "Purchases",
			"sales":     "Sales",
			"udhar":     "Customers & Udhar",
			"reports":   "Reports",
		},
		"common": map[string]interface{}{
			"rs":      "Rs.",
			"welcome": "Welcome",
			"admin":   "Admin",
			"save":    "Save",
			"cancel":  "Cancel",
			"delete":  "Delete",
			"edit":    "Edit",
		},
		"dashboard": map[string]interface{}{
			"todaySales":      "Today's Sales",
			"todayPurchases":  "Today's Purchases",
			"todayProfit":     "Today's Profit",
			"lowStock":        "Low Stock Items",
			"totalCredit":     "Total Credit (Udhar)",
			"inventoryValue":  "Inventory Value",
			"recentSales":     "Recent Sales",
			"recentPurchases": "Recent Purchases",
			"lowStockAlerts":  "Low Stock Alerts",
			"noSales":         "No sales recorded yet",
			"noPurchases":     "No purchases recorded yet",
			"allStocked":      "All items are well stocked",
		},
		"inventory": map[string]interface{}{
			"title":             "Inventory",
			"subtitle":          "Manage your products and stock levels",
			"addItem":           "Add Product",
			"searchPlaceholder": "Search by name or category...",
			"actions":           "Actions",
			"modalTitleAdd":     "Add Product",
			"modalTitleEdit":    "Edit Record",
			"btnCancel":         "Cancel",
			"btnSave":           "Save Product",
			"stockHistory":      "Stock History",
			"noProducts":        "No products found",
		},
		"purchases": map[string]interface{}{
			"title":              "Purchases",
			"subtitle":           "Record stock coming into the store",
			"recordBtn":          "Record Purchase",
			"modalTitle":         "Record Purchase",
			"labelProduct":       "Product",
			"labelSupplier":      "Supplier Name",
			"labelQty":           "Quantity",
			"labelCostUnit":      "Cost per Unit",
			"labelDate":          "Date",
			"labelNotes":         "Notes",
			"placeholderNotes":   "Optional notes about this purchase...",
			"totalPurchaseValue": "Total Purchase Value",
			"btnSave":            "Save Purchase",
			"thDate":             "Date",
			"thProduct":          "Product",
			"thSupplier":         "Supplier",
			"thQty":              "Qty",
			"thCostUnit":         "Cost/Unit",
			"thTotal":            "Total",
			"thNotes":            "Notes",
			"matchesFound":       "matches found",
			"totalFiltered":      "Filtered Total",
			"noPurchases":        "No purchase records found",
		},
		"sales": map[string]interface{}{
			"title":              "Sales",
			"subtitle":           "Record sales and track payments",
			"newSaleBtn":         "New Sale",
			"cash":               "Cash",
			"credit":             "Credit (Udhar)",
			"filterAll":          "All Payment Types",
			"filterAllCustomers": "All Customers",
			"fromDate":           "From",
			"toDate":             "To",
			"clearFilters":       "Clear Filters",
			"matchesFound":       "matches found",
			"labelNotes":         "Notes",
			"placeholderNotes":   "Optional notes about this sale...",
			"btnFinalize":        "Finalize Sale",
			"noSales":            "No sales records found",
		},
		"udhar": map[string]interface{}{
			"title":          "Customers & Udhar",
			"subtitle":       "Track customer credit balances",
			"addCustomerBtn": "Add Customer",
			"recordPayment":  "Record Payment",
			"totalCredit":    "Total Credit",
			"paidAmount":     "Paid Amount",
			"balance":        "Balance",
			"paymentHistory": "Payment History",
			"deleteConfirm":  "Delete this customer? Their sales history will also be removed.",
			"noCustomers":    "No customers yet",
		},
		"reports": map[string]interface{}{
			"title":           "Reports",
			"day":             "Today",
			"week":            "This Week",
			"month":           "This Month",
			"all":             "All Time",
			"totalSales":      "Total Sales",
			"totalPurchases":  "Total Purchases",
			"profit":          "Profit",
			"exportTitle":     "Export Data (CSV)",
			"inventoryList":   "Inventory List",
			"inventorySub":    "Full product list",
			"salesRecords":    "Sales Records",
			"purchaseHistory": "Purchase History",
			"creditReport":    "Customer Credit Report",
			"customerSub":     "All balances",
		},
	},
	Nepali: {
		"nav": map[string]interface{}{
			"dashboard": "ड्यासबोर्ड",
			"inventory": "सामानहरू",
			"purchases": "खरिद",
			"sales":     "बिक्री",
			"udhar":     "ग्राहक र उधारो",
			"reports":   "रिपोर्ट",
		},
		"common": map[string]interface{}{
			"rs":      "रु.",
			"welcome": "स्वागत छ",
			"admin":   "एडमिन",
			"save":    "सेभ गर्नुहोस्",
			"cancel":  "रद्द गर्नुहोस्",
			"delete":  "हटाउनुहोस्",
			"edit":    "सम्पादन",
		},
		"dashboard": map[string]interface{}{
			"todaySales":      "आजको बिक्री",
			"todayPurchases":  "आजको खरिद",
			"todayProfit":     "आजको नाफा",
			"lowStock":        "कम स्टक सामान",
			"totalCredit":     "कुल उधारो",
			"inventoryValue":  "सामानको मूल्य",
			"recentSales":     "पछिल्ला बिक्री",
			"recentPurchases": "पछिल्ला खरिद",
			"lowStockAlerts":  "कम स्टक सूचना",
			"noSales":         "अहिलेसम्म बिक्री छैन",
			"noPurchases":     "अहिलेसम्म खरिद छैन",
			"allStocked":      "सबै सामान पर्याप्त छन्",
		},
		"inventory": map[string]interface{}{
			"title":             "सामानहरू",
			"subtitle":          "सामान र स्टक व्यवस्थापन",
			"addItem":           "सामान थप्नुहोस्",
			"searchPlaceholder": "नाम वा श्रेणीले खोज्नुहोस्...",
			"actions":           "कार्यहरू",
			"modalTitleAdd":     "सामान थप्नुहोस्",
			"modalTitleEdit":    "रेकर्ड सम्पादन",
			"btnCancel":         "रद्द गर्नुहोस्",
			"btnSave":           "सामान सेभ गर्नुहोस्",
			"stockHistory":      "स्टक इतिहास",
			"noProducts":        "कुनै सामान भेटिएन",
		},
		"purchases": map[string]interface{}{
			"title":              "खरिद",
			"subtitle":           "पसलमा आएको सामान रेकर्ड गर्नुहोस्",
			"recordBtn":          "खरिद रेकर्ड गर्नुहोस्",
			"modalTitle":         "खरिद रेकर्ड गर्नुहोस्",
			"labelProduct":       "सामान",
			"labelSupplier":      "आपूर्तिकर्ताको नाम",
			"labelQty":           "परिमाण",
			"labelCostUnit":      "प्रति एकाइ लागत",
			"labelDate":          "मिति",
			"labelNotes":         "टिप्पणी",
			"placeholderNotes":   "यो खरिदबारे थप टिप्पणी...",
			"totalPurchaseValue": "कुल खरिद मूल्य",
			"btnSave":            "खरिद सेभ गर्नुहोस्",
			"thDate":             "मिति",
			"thProduct":          "सामान",
			"thSupplier":         "आपूर्तिकर्ता",
			"thQty":              "परिमाण",
			"thCostUnit":         "लागत/एकाइ",
			"thTotal":            "कुल",
			"thNotes":            "टिप्पणी",
			"matchesFound":       "नतिजा भेटियो",
			"totalFiltered":      "छानिएको कुल",
			"noPurchases":        "कुनै खरिद रेकर्ड भेटिएन",
		},
		"sales": map[string]interface{}{
			"title":              "बिक्री",
			"subtitle":           "बिक्री र भुक्तानी रेकर्ड गर्नुहोस्",
			"newSaleBtn":         "नयाँ बिक्री",
			"cash":               "नगद",
			"credit":             "उधारो",
			"filterAll":          "सबै भुक्तानी",
			"filterAllCustomers": "सबै ग्राहक",
			"fromDate":           "देखि",
			"toDate":             "सम्म",
			"clearFilters":       "फिल्टर हटाउनुहोस्",
			"matchesFound":       "नतिजा भेटियो",
			"labelNotes":         "टिप्पणी",
			"placeholderNotes":   "यो बिक्रीबारे थप टिप्पणी...",
			"btnFinalize":        "बिक्री पूरा गर्नुहोस्",
			"noSales":            "कुनै बिक्री रेकर्ड भेटिएन",
		},
		"udhar": map[string]interface{}{
			"title":          "ग्राहक र उधारो",
			"subtitle":       "ग्राहकको उधारो हिसाब",
			"addCustomerBtn": "ग्राहक थप्नुहोस्",
			"recordPayment":  "भुक्तानी रेकर्ड गर्नुहोस्",
			"totalCredit":    "कुल उधारो",
			"paidAmount":     "तिरेको रकम",
			"balance":        "बाँकी",
			"paymentHistory": "भुक्तानी इतिहास",
			"deleteConfirm":  "यो ग्राहक हटाउने? उनको बिक्री इतिहास पनि हट्नेछ।",
			"noCustomers":    "अहिलेसम्म ग्राहक छैनन्",
		},
		"reports": map[string]interface{}{
			"title":           "रिपोर्ट",
			"day":             "आज",
			"week":            "यो हप्ता",
			"month":           "यो महिना",
			"all":             "सबै समय",
			"totalSales":      "कुल बिक्री",
			"totalPurchases":  "कुल खरिद",
			"profit":          "नाफा",
			"exportTitle":     "डाटा निर्यात (CSV)",
			"inventoryList":   "सामानको सूची",
			"inventorySub":    "पूरा सामान सूची",
			"salesRecords":    "बिक्री रेकर्ड",
			"purchaseHistory": "खरिद इतिहास",
			"creditReport":    "ग्राहक उधारो रिपोर्ट",
			"customerSub":     "सबै बाँकी रकम",
		},
	},
}

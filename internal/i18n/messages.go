package i18n

// messages holds every UI string by language, then key.
var messages = map[string]map[string]string{
	"en": {
		"dashboard":   "Dashboard",
		"fuel":        "Fuel",
		"maintenance": "Maintenance",
		"expenses":    "Expenses",
		"vehicles":    "Vehicles",
		"settings":    "Settings",
		"appTitle":    "carpro",
		"welcome":     "Welcome back",
		"entries":     "Entries",
		"loading":     "Loading records",

		"totalExpenses":         "Total Expenses",
		"fuelEfficiency":        "Fuel Efficiency",
		"upcomingMaintenance":   "Upcoming Maintenance",
		"monthlyExpensesTrend":  "Monthly Expenses Trend",
		"expenseBreakdown":      "Expense Breakdown",
		"fuelEfficiencyHistory": "Fuel Efficiency History",
		"thisMonth":             "This Month",
		"avgEfficiency":         "Avg Efficiency",
		"maintenanceDue":        "Maintenance Due",
		"lifetimeTotal":         "Lifetime total",
		"basedOnRecent":         "Based on recent fills",
		"currentMonthSpending":  "Current month spending",
		"itemsNeedAttention":    "Items need attention",
		"dueIn":                 "Due in",
		"overdueBy":             "Overdue by",
		"soon":                  "Soon",
		"scheduled":             "Scheduled",
		"overdue":               "Overdue",
		"noUpcomingMaintenance": "No upcoming maintenance due.",
		"days":                  "days",
		"km":                    "km",
		"kmPerLiter":            "km/l",
		"other":                 "Other",

		"exportData":     "Export Data",
		"importData":     "Import Data",
		"clearData":      "Clear Data",
		"language":       "Language",
		"confirmDelete":  "Are you sure you want to delete this?",
		"successImport":  "Data imported successfully!",
		"errorImport":    "Error importing data. Invalid file.",
		"successClear":   "All data cleared.",
		"dataManagement": "Data Management",

		"fuelTracking":   "Fuel Tracking",
		"totalCost":      "Total Cost",
		"totalVolume":    "Total Volume",
		"avgPrice":       "Avg Price",
		"date":           "Date",
		"odometer":       "Odometer (km)",
		"liters":         "Liters",
		"pricePerLiter":  "Price / Liter",
		"station":        "Station",
		"fullTank":       "Full Tank",
		"partial":        "Partial",
		"noFuelEntries":  "No fuel entries yet.",
		"unknownStation": "Unknown Station",

		"maintenanceTracking":  "Maintenance Tracking",
		"totalSpent":           "Total Spent",
		"lastService":          "Last Service",
		"upcoming":             "Upcoming",
		"serviceType":          "Service Type",
		"cost":                 "Cost",
		"provider":             "Provider",
		"notes":                "Notes",
		"nextDue":              "Next Due",
		"noMaintenanceRecords": "No maintenance records yet.",

		"expensesTracking":  "Expenses Tracking",
		"category":          "Category",
		"titleDescription":  "Title / Description",
		"noExpensesRecords": "No expenses recorded yet.",

		"expenseParking":     "Parking",
		"expenseInsurance":   "Insurance",
		"expenseFine":        "Fine",
		"expenseTax":         "Tax / License",
		"expenseCarWash":     "Car Wash",
		"expenseAccessories": "Accessories",
		"expenseToll":        "Toll",
		"expenseOther":       "Other",

		"make":            "Make",
		"model":           "Model",
		"year":            "Year",
		"licensePlate":    "License Plate",
		"color":           "Color",
		"currentOdometer": "Current Odometer (km)",
		"vin":             "VIN",
		"default":         "Default",
		"plate":           "Plate",
		"noVehicles":      "No vehicles added yet",
		"addFirstCar":     "Add your first car to start tracking expenses.",
	},
	"ar": {
		"dashboard":   "لوحة التحكم",
		"fuel":        "الوقود",
		"maintenance": "الصيانة",
		"expenses":    "المصاريف",
		"vehicles":    "المركبات",
		"settings":    "الإعدادات",
		"appTitle":    "كار برو",
		"welcome":     "مرحباً بعودتك",
		"entries":     "السجلات",
		"loading":     "جارٍ تحميل السجلات",

		"totalExpenses":         "إجمالي المصاريف",
		"fuelEfficiency":        "كفاءة الوقود",
		"upcomingMaintenance":   "الصيانة القادمة",
		"monthlyExpensesTrend":  "اتجاه المصاريف الشهرية",
		"expenseBreakdown":      "توزيع المصاريف",
		"fuelEfficiencyHistory": "سجل كفاءة الوقود",
		"thisMonth":             "هذا الشهر",
		"avgEfficiency":         "متوسط الكفاءة",
		"maintenanceDue":        "صيانة مستحقة",
		"lifetimeTotal":         "الإجمالي الكلي",
		"basedOnRecent":         "بناءً على التعبئات الأخيرة",
		"currentMonthSpending":  "إنفاق الشهر الحالي",
		"itemsNeedAttention":    "عناصر تحتاج انتباه",
		"dueIn":                 "مستحق خلال",
		"overdueBy":             "متأخر بـ",
		"soon":                  "قريباً",
		"scheduled":             "مجدول",
		"overdue":               "متأخر",
		"noUpcomingMaintenance": "لا توجد صيانة قادمة.",
		"days":                  "أيام",
		"km":                    "كم",
		"kmPerLiter":            "كم/لتر",
		"other":                 "أخرى",

		"exportData":     "تصدير البيانات",
		"importData":     "استيراد البيانات",
		"clearData":      "مسح البيانات",
		"language":       "اللغة",
		"confirmDelete":  "هل أنت متأكد أنك تريد حذف هذا؟",
		"successImport":  "تم استيراد البيانات بنجاح!",
		"errorImport":    "خطأ في استيراد البيانات. ملف غير صالح.",
		"successClear":   "تم مسح جميع البيانات.",
		"dataManagement": "إدارة البيانات",

		"fuelTracking":   "تتبع الوقود",
		"totalCost":      "التكلفة الإجمالية",
		"totalVolume":    "إجمالي الكمية",
		"avgPrice":       "متوسط السعر",
		"date":           "التاريخ",
		"odometer":       "العداد (كم)",
		"liters":         "لترات",
		"pricePerLiter":  "السعر / لتر",
		"station":        "المحطة",
		"fullTank":       "خزان ممتلئ",
		"partial":        "جزئي",
		"noFuelEntries":  "لا توجد سجلات وقود بعد.",
		"unknownStation": "محطة غير معروفة",

		"maintenanceTracking":  "تتبع الصيانة",
		"totalSpent":           "إجمالي المنفق",
		"lastService":          "آخر خدمة",
		"upcoming":             "قادم",
		"serviceType":          "نوع الخدمة",
		"cost":                 "التكلفة",
		"provider":             "المزود",
		"notes":                "ملاحظات",
		"nextDue":              "الاستحقاق القادم",
		"noMaintenanceRecords": "لا توجد سجلات صيانة بعد.",

		"expensesTracking":  "تتبع المصاريف",
		"category":          "الفئة",
		"titleDescription":  "العنوان / الوصف",
		"noExpensesRecords": "لا توجد مصاريف مسجلة بعد.",

		"expenseParking":     "مواقف",
		"expenseInsurance":   "تأمين",
		"expenseFine":        "مخالفة",
		"expenseTax":         "ضرائب / ترخيص",
		"expenseCarWash":     "غسيل السيارة",
		"expenseAccessories": "إكسسوارات",
		"expenseToll":        "رسوم طريق",
		"expenseOther":       "أخرى",

		"make":            "الشركة المصنعة",
		"model":           "الموديل",
		"year":            "السنة",
		"licensePlate":    "رقم اللوحة",
		"color":           "اللون",
		"currentOdometer": "العداد الحالي (كم)",
		"vin":             "رقم الهيكل",
		"default":         "افتراضي",
		"plate":           "اللوحة",
		"noVehicles":      "لم تتم إضافة مركبات بعد",
		"addFirstCar":     "أضف سيارتك الأولى لبدء تتبع المصاريف.",
	},
}

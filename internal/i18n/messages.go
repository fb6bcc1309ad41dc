package i18n

// catalog holds every display string. English is complete; Hindi and
// Marathi fall back to English for keys they do not define.
var catalog = map[Language]map[string]string{
	English: {
		"selectRole":      "Select your role",
		"driver":          "Driver",
		"carOwner":        "Car Owner",
		"admin":           "Admin",
		"login":           "Login",
		"adminLogin":      "Admin Login",
		"logout":          "Logout",
		"phoneNumber":     "Phone Number",
		"enterPhone":      "Enter your phone number to continue",
		"enterEmail":      "Enter your email and password",
		"email":           "Email",
		"password":        "Password",
		"sendOtp":         "Send OTP",
		"verifyOtp":       "Verify OTP",
		"enterOtp":        "Enter the 6-digit code sent to",
		"dashboard":       "Dashboard",
		"jobs":            "Jobs",
		"myJobs":          "My Jobs",
		"postJob":         "Post a Job",
		"jobTitle":        "Job Title",
		"jobDescription":  "Job Description",
		"location":        "Location",
		"salary":          "Salary",
		"duration":        "Duration",
		"accept":          "Accept",
		"noJobs":          "No jobs available",
		"search":          "Search",
		"searchDrivers":   "Search drivers",
		"noDrivers":       "No drivers found",
		"aiRecommended":   "Recommended Drivers",
		"liveDrivers":     "Live Drivers",
		"trackDriver":     "Track Driver",
		"online":          "Online",
		"offline":         "Offline",
		"pending":         "Pending",
		"completed":       "Completed",
		"verified":        "Verified",
		"rating":          "Rating",
		"trips":           "Trips",
		"years":           "years",
		"completionRate":  "Completion Rate",
		"wallet":          "Wallet",
		"balance":         "Balance",
		"totalEarnings":   "Total Earnings",
		"withdraw":        "Withdraw",
		"withdrawRequest": "Withdrawal Request",
		"transactions":    "Transactions",
		"payment":         "Payment",
		"today":           "Today",
		"thisWeek":        "This Week",
		"thisMonth":       "This Month",
		"revenue":         "Revenue",
		"analytics":       "Analytics",
		"users":           "Users",
		"approveKyc":      "Approve KYC",
		"rejectKyc":       "Reject KYC",
		"suspendDriver":   "Suspend Driver",
		"blockOwner":      "Block Owner",
		"profile":         "Profile",
		"settings":        "Settings",
		"language":        "Language",
		"cancel":          "Cancel",
		"confirm":         "Confirm",
	},
	Hindi: {
		"selectRole":     "अपनी भूमिका चुनें",
		"driver":         "ड्राइवर",
		"carOwner":       "कार मालिक",
		"login":          "लॉगिन",
		"adminLogin":     "एडमिन लॉगिन",
		"logout":         "लॉगआउट",
		"phoneNumber":    "फ़ोन नंबर",
		"enterPhone":     "जारी रखने के लिए अपना फ़ोन नंबर दर्ज करें",
		"sendOtp":        "OTP भेजें",
		"verifyOtp":      "OTP सत्यापित करें",
		"enterOtp":       "भेजा गया 6 अंकों का कोड दर्ज करें",
		"dashboard":      "डैशबोर्ड",
		"jobs":           "नौकरियां",
		"myJobs":         "मेरी नौकरियां",
		"postJob":        "नौकरी पोस्ट करें",
		"location":       "स्थान",
		"salary":         "वेतन",
		"accept":         "स्वीकार करें",
		"online":         "ऑनलाइन",
		"offline":        "ऑफ़लाइन",
		"pending":        "लंबित",
		"completed":      "पूर्ण",
		"rating":         "रेटिंग",
		"trips":          "यात्राएं",
		"wallet":         "वॉलेट",
		"balance":        "शेष राशि",
		"totalEarnings":  "कुल कमाई",
		"withdraw":       "निकालें",
		"transactions":   "लेनदेन",
		"profile":        "प्रोफ़ाइल",
		"settings":       "सेटिंग्स",
		"language":       "भाषा",
		"cancel":         "रद्द करें",
		"confirm":        "पुष्टि करें",
		"completionRate": "पूर्णता दर",
	},
	Marathi: {
		"selectRole":    "तुमची भूमिका निवडा",
		"driver":        "चालक",
		"carOwner":      "गाडी मालक",
		"login":         "लॉगिन",
		"logout":        "लॉगआउट",
		"phoneNumber":   "फोन नंबर",
		"sendOtp":       "OTP पाठवा",
		"verifyOtp":     "OTP सत्यापित करा",
		"dashboard":     "डॅशबोर्ड",
		"jobs":          "नोकऱ्या",
		"postJob":       "नोकरी पोस्ट करा",
		"location":      "ठिकाण",
		"salary":        "पगार",
		"online":        "ऑनलाइन",
		"offline":       "ऑफलाइन",
		"wallet":        "वॉलेट",
		"totalEarnings": "एकूण कमाई",
		"profile":       "प्रोफाइल",
		"settings":      "सेटिंग्ज",
		"language":      "भाषा",
		"cancel":        "रद्द करा",
		"confirm":       "पुष्टी करा",
	},
}

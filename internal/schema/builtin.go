package schema

const phonePlaceholder = "01XXXXXXXXX"

// Default is applied to any category without a registered schema.
func Default() Config {
	return Config{
		Key: "default",
		Fields: []Field{
			{Key: KeyTitle, Label: "শিরোনাম / নাম", Placeholder: "শিরোনাম লিখুন", Type: FieldText, Required: true},
			{Key: KeyPhone, Label: "ফোন নম্বর", Placeholder: phonePlaceholder, Type: FieldPhone},
			{Key: KeyAddress, Label: "ঠিকানা", Placeholder: "ঠিকানা লিখুন", Type: FieldText},
			{Key: KeyDescription, Label: "বিবরণ", Placeholder: "অতিরিক্ত তথ্য", Type: FieldTextarea},
		},
	}
}

// Builtin returns the schemas shipped with the service, one per category.
func Builtin() []Config {
	return []Config{
		{
			Key:  "doctor",
			Name: "ডাক্তার",
			Fields: []Field{
				{Key: KeyTitle, Label: "ডাক্তারের নাম", Placeholder: "ডাঃ আব্দুল করিম", Type: FieldText, Required: true},
				{Key: KeyPhone, Label: "ফোন নম্বর", Placeholder: phonePlaceholder, Type: FieldPhone},
				{Key: "specialty", Label: "কীসের ডাক্তার (বিশেষজ্ঞতা)", Placeholder: "হৃদরোগ / চর্ম / শিশু / মেডিসিন", Type: FieldText, Required: true},
				{Key: "chamber", Label: "চেম্বার ঠিকানা", Placeholder: "চেম্বারের ঠিকানা লিখুন", Type: FieldText},
				{Key: "visit_time", Label: "⏰ ভিজিটের সময়", Placeholder: "সকাল ১০টা - দুপুর ২টা", Type: FieldText, Highlight: true},
				{Key: "visit_fee", Label: "💰 ভিজিট ফি", Placeholder: "৫০০ টাকা", Type: FieldText, Highlight: true},
				{Key: KeyDescription, Label: "বিবরণ", Placeholder: "অতিরিক্ত তথ্য যেমন ছুটির দিন, অনলাইন সেবা ইত্যাদি", Type: FieldTextarea},
			},
		},
		{
			Key:  "hospital",
			Name: "হাসপাতাল",
			Fields: []Field{
				{Key: KeyTitle, Label: "হাসপাতালের নাম", Placeholder: "ঢাকা মেডিকেল কলেজ হাসপাতাল", Type: FieldText, Required: true},
				{Key: KeyPhone, Label: "ফোন নম্বর", Placeholder: phonePlaceholder, Type: FieldPhone},
				{Key: KeyAddress, Label: "ঠিকানা", Placeholder: "বিস্তারিত ঠিকানা", Type: FieldText},
				{Key: "hospital_type", Label: "হাসপাতালের ধরন", Placeholder: "সরকারি / বেসরকারি / ক্লিনিক", Type: FieldSelect, Options: []string{"সরকারি", "বেসরকারি", "ক্লিনিক", "ডায়াগনস্টিক সেন্টার"}},
				{Key: "departments", Label: "বিভাগ সমূহ", Placeholder: "মেডিসিন, সার্জারি, গাইনি, শিশু", Type: FieldText},
				{Key: "emergency", Label: "🚨 ইমারজেন্সি নম্বর", Placeholder: "জরুরি নম্বর", Type: FieldPhone, Highlight: true},
				{Key: KeyDescription, Label: "বিবরণ", Placeholder: "বেড সংখ্যা, সুযোগ-সুবিধা ইত্যাদি", Type: FieldTextarea},
			},
		},
		{
			Key:  "diagnostic",
			Name: "ডায়াগনস্টিক",
			Fields: []Field{
				{Key: KeyTitle, Label: "ডায়াগনস্টিক সেন্টারের নাম", Placeholder: "পপুলার ডায়াগনস্টিক", Type: FieldText, Required: true},
				{Key: KeyPhone, Label: "ফোন নম্বর", Placeholder: phonePlaceholder, Type: FieldPhone},
				{Key: KeyAddress, Label: "ঠিকানা", Placeholder: "বিস্তারিত ঠিকানা", Type: FieldText},
				{Key: "services", Label: "সেবা সমূহ", Placeholder: "এক্স-রে, আল্ট্রাসনোগ্রাফি, ব্লাড টেস্ট", Type: FieldText},
				{Key: "timing", Label: "⏰ সেবার সময়", Placeholder: "সকাল ৮টা - রাত ১০টা", Type: FieldText, Highlight: true},
				{Key: KeyDescription, Label: "বিবরণ", Placeholder: "অতিরিক্ত তথ্য", Type: FieldTextarea},
			},
		},
		{
			Key:  "blood",
			Name: "রক্ত",
			Fields: []Field{
				{Key: KeyTitle, Label: "দাতার নাম", Placeholder: "মোঃ করিম", Type: FieldText, Required: true},
				{Key: KeyPhone, Label: "ফোন নম্বর", Placeholder: phonePlaceholder, Type: FieldPhone, Required: true},
				{Key: "blood_group", Label: "🩸 রক্তের গ্রুপ", Placeholder: "A+", Type: FieldSelect, Options: []string{"A+", "A-", "B+", "B-", "O+", "O-", "AB+", "AB-"}, Highlight: true},
				{Key: KeyAddress, Label: "ঠিকানা", Placeholder: "এলাকা ও ঠিকানা", Type: FieldText},
				{Key: "last_donated", Label: "সর্বশেষ রক্তদান", Placeholder: "তারিখ বা মাস", Type: FieldText},
				{Key: KeyDescription, Label: "অতিরিক্ত তথ্য", Placeholder: "যেকোনো বিশেষ তথ্য", Type: FieldTextarea},
			},
		},
		{
			Key:  "bus_schedule",
			Name: "বাসের সময়সূচি",
			Fields: []Field{
				{Key: KeyTitle, Label: "বাস কোম্পানির নাম", Placeholder: "গ্রিনলাইন / হানিফ", Type: FieldText, Required: true},
				{Key: KeyPhone, Label: "বুকিং নম্বর", Placeholder: phonePlaceholder, Type: FieldPhone},
				{Key: "route", Label: "🛣️ রুট", Placeholder: "ঢাকা - চট্টগ্রাম", Type: FieldText, Required: true},
				{Key: "departure_time", Label: "⏰ ছাড়ার সময়", Placeholder: "সকাল ৮:০০, দুপুর ২:০০", Type: FieldText, Highlight: true},
				{Key: "fare", Label: "💰 ভাড়া", Placeholder: "৬০০ টাকা", Type: FieldText, Highlight: true},
				{Key: "bus_type", Label: "বাসের ধরন", Placeholder: "এসি / নন-এসি", Type: FieldSelect, Options: []string{"এসি", "নন-এসি", "স্লিপার", "বিজনেস ক্লাস"}},
				{Key: KeyAddress, Label: "কাউন্টার ঠিকানা", Placeholder: "কাউন্টারের ঠিকানা", Type: FieldText},
				{Key: KeyDescription, Label: "বিবরণ", Placeholder: "অতিরিক্ত তথ্য", Type: FieldTextarea},
			},
		},
		{
			Key:  "train_schedule",
			Name: "ট্রেনের সময়সূচি",
			Fields: []Field{
				{Key: KeyTitle, Label: "ট্রেনের নাম", Placeholder: "সুবর্ণ এক্সপ্রেস", Type: FieldText, Required: true},
				{Key: "route", Label: "🛤️ রুট", Placeholder: "ঢাকা - চট্টগ্রাম", Type: FieldText, Required: true},
				{Key: "departure_time", Label: "⏰ ছাড়ার সময়", Placeholder: "সকাল ৭:০০", Type: FieldText, Highlight: true},
				{Key: "fare", Label: "💰 ভাড়া", Placeholder: "শোভন: ৩৪৫ টাকা", Type: FieldText, Highlight: true},
				{Key: "train_class", Label: "ক্লাস", Type: FieldSelect, Options: []string{"শোভন", "শোভন চেয়ার", "প্রথম শ্রেণি", "এসি চেয়ার", "এসি বার্থ", "স্নিগ্ধা"}},
				{Key: KeyPhone, Label: "যোগাযোগ নম্বর", Placeholder: "স্টেশন নম্বর", Type: FieldPhone},
				{Key: KeyDescription, Label: "বিবরণ", Placeholder: "ছুটির দিন, স্টপেজ ইত্যাদি", Type: FieldTextarea},
			},
		},
		{
			Key:  "tourist_spot",
			Name: "দর্শনীয় স্থান",
			Fields: []Field{
				{Key: KeyTitle, Label: "স্থানের নাম", Placeholder: "সোনারগাঁও জাদুঘর", Type: FieldText, Required: true},
				{Key: KeyAddress, Label: "ঠিকানা", Placeholder: "বিস্তারিত ঠিকানা", Type: FieldText, Required: true},
				{Key: "entry_fee", Label: "🎟️ প্রবেশ মূল্য", Placeholder: "ফ্রি / ২০ টাকা", Type: FieldText, Highlight: true},
				{Key: "timing", Label: "⏰ সময়সূচি", Placeholder: "সকাল ৯টা - বিকাল ৫টা", Type: FieldText, Highlight: true},
				{Key: KeyPhone, Label: "যোগাযোগ নম্বর", Placeholder: phonePlaceholder, Type: FieldPhone},
				{Key: KeyDescription, Label: "বিবরণ", Placeholder: "স্থানটির বিশেষত্ব, কিভাবে যাবেন ইত্যাদি", Type: FieldTextarea},
			},
		},
		{
			Key:  "house_rent",
			Name: "বাসা ভাড়া",
			Fields: []Field{
				{Key: KeyTitle, Label: "বিজ্ঞাপনের শিরোনাম", Placeholder: "২ রুমের বাসা ভাড়া দেওয়া হবে", Type: FieldText, Required: true},
				{Key: KeyPhone, Label: "যোগাযোগ নম্বর", Placeholder: phonePlaceholder, Type: FieldPhone, Required: true},
				{Key: KeyAddress, Label: "ঠিকানা", Placeholder: "বাসার ঠিকানা", Type: FieldText, Required: true},
				{Key: "rent", Label: "💰 ভাড়া", Placeholder: "৮,০০০ টাকা / মাস", Type: FieldText, Highlight: true},
				{Key: "rooms", Label: "🛏️ রুম সংখ্যা", Placeholder: "২ রুম, ১ বাথরুম, ১ কিচেন", Type: FieldText},
				{Key: "rent_type", Label: "ভাড়ার ধরন", Type: FieldSelect, Options: []string{"পরিবার", "ব্যাচেলর", "সাবলেট", "অফিস"}},
				{Key: KeyDescription, Label: "বিবরণ", Placeholder: "সুযোগ-সুবিধা, শর্তাবলি ইত্যাদি", Type: FieldTextarea},
			},
		},
		{
			Key:  "shopping",
			Name: "শপিং",
			Fields: []Field{
				{Key: KeyTitle, Label: "দোকান/মার্কেটের নাম", Placeholder: "নিউ মার্কেট", Type: FieldText, Required: true},
				{Key: KeyPhone, Label: "নম্বর", Placeholder: phonePlaceholder, Type: FieldPhone},
				{Key: KeyAddress, Label: "ঠিকানা", Placeholder: "বিস্তারিত ঠিকানা", Type: FieldText},
				{Key: "product_type", Label: "🛍️ পণ্যের ধরন", Placeholder: "কাপড় / ইলেকট্রনিক্স / গ্রোসারি", Type: FieldText},
				{Key: "timing", Label: "⏰ দোকান খোলার সময়", Placeholder: "সকাল ১০টা - রাত ৯টা", Type: FieldText, Highlight: true},
				{Key: KeyDescription, Label: "বিবরণ", Placeholder: "বিশেষ অফার বা তথ্য", Type: FieldTextarea},
			},
		},
		{
			Key:  "fire_service",
			Name: "ফায়ার সার্ভিস",
			Fields: []Field{
				{Key: KeyTitle, Label: "স্টেশনের নাম", Placeholder: "ফায়ার সার্ভিস ও সিভিল ডিফেন্স", Type: FieldText, Required: true},
				{Key: KeyPhone, Label: "📞 জরুরি নম্বর", Placeholder: "999 / 01XXXXXXXXX", Type: FieldPhone, Required: true, Highlight: true},
				{Key: KeyAddress, Label: "ঠিকানা", Placeholder: "স্টেশনের ঠিকানা", Type: FieldText},
				{Key: KeyDescription, Label: "বিবরণ", Placeholder: "অতিরিক্ত তথ্য", Type: FieldTextarea},
			},
		},
		{
			Key:  "courier",
			Name: "কুরিয়ার সার্ভিস",
			Fields: []Field{
				{Key: KeyTitle, Label: "কুরিয়ার সার্ভিসের নাম", Placeholder: "সুন্দরবন কুরিয়ার", Type: FieldText, Required: true},
				{Key: KeyPhone, Label: "ফোন নম্বর", Placeholder: phonePlaceholder, Type: FieldPhone},
				{Key: KeyAddress, Label: "অফিস ঠিকানা", Placeholder: "বিস্তারিত ঠিকানা", Type: FieldText},
				{Key: "service_area", Label: "📍 সেবা এলাকা", Placeholder: "সারাদেশ / ঢাকা শহর", Type: FieldText},
				{Key: "timing", Label: "⏰ অফিস সময়", Placeholder: "সকাল ৯টা - সন্ধ্যা ৬টা", Type: FieldText, Highlight: true},
				{Key: KeyDescription, Label: "বিবরণ", Placeholder: "রেট, ডেলিভারি সময় ইত্যাদি", Type: FieldTextarea},
			},
		},
		{
			Key:  "police",
			Name: "থানা-পুলিশ",
			Fields: []Field{
				{Key: KeyTitle, Label: "থানার নাম", Placeholder: "কোতওয়ালি থানা", Type: FieldText, Required: true},
				{Key: KeyPhone, Label: "📞 জরুরি নম্বর", Placeholder: "999 / 01XXXXXXXXX", Type: FieldPhone, Required: true, Highlight: true},
				{Key: KeyAddress, Label: "ঠিকানা", Placeholder: "থানার ঠিকানা", Type: FieldText},
				{Key: "oc_name", Label: "👮 ওসির নাম", Placeholder: "ওসি/ভারপ্রাপ্ত কর্মকর্তা", Type: FieldText},
				{Key: KeyDescription, Label: "বিবরণ", Placeholder: "অতিরিক্ত তথ্য", Type: FieldTextarea},
			},
		},
		{
			Key:  "electricity",
			Name: "বিদ্যুৎ অফিস",
			Fields: []Field{
				{Key: KeyTitle, Label: "অফিসের নাম", Placeholder: "পল্লী বিদ্যুৎ সমিতি", Type: FieldText, Required: true},
				{Key: KeyPhone, Label: "📞 অভিযোগ নম্বর", Placeholder: phonePlaceholder, Type: FieldPhone, Highlight: true},
				{Key: KeyAddress, Label: "ঠিকানা", Placeholder: "অফিসের ঠিকানা", Type: FieldText},
				{Key: "timing", Label: "⏰ অফিস সময়", Placeholder: "সকাল ৯টা - বিকাল ৫টা", Type: FieldText},
				{Key: KeyDescription, Label: "বিবরণ", Placeholder: "অতিরিক্ত তথ্য", Type: FieldTextarea},
			},
		},
		{
			Key:  "restaurant",
			Name: "রেস্টুরেন্ট",
			Fields: []Field{
				{Key: KeyTitle, Label: "রেস্টুরেন্টের নাম", Placeholder: "স্টার কাবাব", Type: FieldText, Required: true},
				{Key: KeyPhone, Label: "ফোন / অর্ডার নম্বর", Placeholder: phonePlaceholder, Type: FieldPhone},
				{Key: KeyAddress, Label: "ঠিকানা", Placeholder: "বিস্তারিত ঠিকানা", Type: FieldText},
				{Key: "food_type", Label: "🍽️ খাবারের ধরন", Placeholder: "বাঙালি / চাইনিজ / ফাস্টফুড", Type: FieldText},
				{Key: "price_range", Label: "💰 মূল্য পরিসীমা", Placeholder: "১০০-৫০০ টাকা", Type: FieldText, Highlight: true},
				{Key: "timing", Label: "⏰ খোলার সময়", Placeholder: "সকাল ৮টা - রাত ১১টা", Type: FieldText, Highlight: true},
				{Key: "delivery", Label: "ডেলিভারি", Type: FieldSelect, Options: []string{"হোম ডেলিভারি আছে", "হোম ডেলিভারি নেই", "ফুডপান্ডায় আছে"}},
				{Key: KeyDescription, Label: "বিবরণ", Placeholder: "স্পেশাল আইটেম, বসার ব্যবস্থা ইত্যাদি", Type: FieldTextarea},
			},
		},
		{
			Key:  "hotel",
			Name: "হোটেল",
			Fields: []Field{
				{Key: KeyTitle, Label: "হোটেলের নাম", Placeholder: "হোটেল রয়্যাল", Type: FieldText, Required: true},
				{Key: KeyPhone, Label: "বুকিং নম্বর", Placeholder: phonePlaceholder, Type: FieldPhone},
				{Key: KeyAddress, Label: "ঠিকানা", Placeholder: "বিস্তারিত ঠিকানা", Type: FieldText},
				{Key: "room_rate", Label: "💰 রুম ভাড়া", Placeholder: "১,৫০০ - ৫,০০০ টাকা", Type: FieldText, Highlight: true},
				{Key: "hotel_type", Label: "হোটেলের ধরন", Type: FieldSelect, Options: []string{"আবাসিক", "অনাবাসিক", "রিসোর্ট", "মোটেল", "গেস্ট হাউস"}},
				{Key: "amenities", Label: "🏊 সুবিধা সমূহ", Placeholder: "এসি, ওয়াইফাই, পার্কিং", Type: FieldText},
				{Key: KeyDescription, Label: "বিবরণ", Placeholder: "চেক-ইন/আউট সময়, নীতিমালা ইত্যাদি", Type: FieldTextarea},
			},
		},
		{
			Key:  "wedding",
			Name: "ওয়েডিং সার্ভিস",
			Fields: []Field{
				{Key: KeyTitle, Label: "সার্ভিসের নাম", Placeholder: "ড্রিম ওয়েডিং প্ল্যানার", Type: FieldText, Required: true},
				{Key: KeyPhone, Label: "যোগাযোগ নম্বর", Placeholder: phonePlaceholder, Type: FieldPhone},
				{Key: KeyAddress, Label: "ঠিকানা", Placeholder: "বিস্তারিত ঠিকানা", Type: FieldText},
				{Key: "service_type", Label: "💍 সেবার ধরন", Type: FieldSelect, Options: []string{"কমিউনিটি সেন্টার", "ক্যাটারিং", "ডেকোরেশন", "ফটোগ্রাফি", "মেকআপ", "মিউজিক", "কমপ্লিট প্যাকেজ"}},
				{Key: "price", Label: "💰 মূল্য", Placeholder: "প্যাকেজ শুরু ৫০,০০০ টাকা", Type: FieldText, Highlight: true},
				{Key: KeyDescription, Label: "বিবরণ", Placeholder: "সেবা বিবরণ, প্যাকেজ ডিটেইলস", Type: FieldTextarea},
			},
		},
		{
			Key:  "car_rent",
			Name: "গাড়ি ভাড়া",
			Fields: []Field{
				{Key: KeyTitle, Label: "সার্ভিসের নাম / মালিকের নাম", Placeholder: "আল-আমিন রেন্ট-আ-কার", Type: FieldText, Required: true},
				{Key: KeyPhone, Label: "যোগাযোগ নম্বর", Placeholder: phonePlaceholder, Type: FieldPhone, Required: true},
				{Key: "vehicle_type", Label: "🚗 গাড়ির ধরন", Type: FieldSelect, Options: []string{"সেডান", "মাইক্রোবাস", "প্রাইভেট কার", "পিকআপ", "সিএনজি", "বাইক"}},
				{Key: "fare", Label: "💰 ভাড়া", Placeholder: "৫,০০০ টাকা / দিন", Type: FieldText, Highlight: true},
				{Key: KeyAddress, Label: "এলাকা", Placeholder: "স্ট্যান্ড / গ্যারেজ ঠিকানা", Type: FieldText},
				{Key: "ac_status", Label: "এসি/নন-এসি", Type: FieldSelect, Options: []string{"এসি", "নন-এসি", "দুটোই আছে"}},
				{Key: KeyDescription, Label: "বিবরণ", Placeholder: "ড্রাইভার সহ/ছাড়া, শর্তাবলি", Type: FieldTextarea},
			},
		},
		{
			Key:            "job",
			Name:           "চাকরি",
			ShowWarning:    true,
			WarningMessage: "⚠️ সতর্কতা: চাকরি সংক্রান্ত কোনো আর্থিক লেনদেন করার আগে অবশ্যই যাচাই করুন। কোনো প্রতিষ্ঠান বা ব্যক্তি যদি চাকরির বিনিময়ে টাকা দাবি করে তাহলে সেটি প্রতারণা হতে পারে। \"আমার জেলা\" কোনো আর্থিক লেনদেনের জন্য দায়ী নয়।",
			Fields: []Field{
				{Key: KeyTitle, Label: "পদের নাম", Placeholder: "সিনিয়র অফিসার", Type: FieldText, Required: true},
				{Key: "company", Label: "🏢 প্রতিষ্ঠানের নাম", Placeholder: "XYZ কোম্পানি লিমিটেড", Type: FieldText, Required: true},
				{Key: KeyPhone, Label: "যোগাযোগ নম্বর", Placeholder: phonePlaceholder, Type: FieldPhone},
				{Key: "salary", Label: "💰 বেতন", Placeholder: "২৫,০০০ - ৩৫,০০০ টাকা", Type: FieldText, Highlight: true},
				{Key: "qualification", Label: "🎓 যোগ্যতা", Placeholder: "ন্যূনতম এইচএসসি / স্নাতক", Type: FieldText},
				{Key: "job_type", Label: "চাকরির ধরন", Type: FieldSelect, Options: []string{"ফুল-টাইম", "পার্ট-টাইম", "কন্ট্রাক্ট", "ইন্টার্ন", "ফ্রিল্যান্স"}},
				{Key: "deadline", Label: "📅 আবেদনের শেষ তারিখ", Placeholder: "৩০ মার্চ ২০২৫", Type: FieldText, Highlight: true},
				{Key: KeyAddress, Label: "কর্মস্থল", Placeholder: "ঠিকানা", Type: FieldText},
				{Key: KeyDescription, Label: "বিবরণ", Placeholder: "দায়িত্ব, সুযোগ-সুবিধা, আবেদন প্রক্রিয়া", Type: FieldTextarea},
			},
		},
		{
			Key:            "entrepreneur",
			Name:           "উদ্যোক্তা",
			ShowWarning:    true,
			WarningMessage: "⚠️ সতর্কতা: ব্যবসায়িক বা বিনিয়োগ সংক্রান্ত কোনো আর্থিক লেনদেন করার আগে অবশ্যই যাচাই করুন। অপরিচিত কাউকে অগ্রিম টাকা প্রদান করবেন না। \"আমার জেলা\" কোনো আর্থিক লেনদেনের জন্য দায়ী নয়।",
			Fields: []Field{
				{Key: KeyTitle, Label: "ব্যবসার নাম / পরিচিতি", Placeholder: "গ্রামীণ হস্তশিল্প", Type: FieldText, Required: true},
				{Key: KeyPhone, Label: "যোগাযোগ নম্বর", Placeholder: phonePlaceholder, Type: FieldPhone, Required: true},
				{Key: "business_type", Label: "💼 ব্যবসার ধরন", Placeholder: "খাদ্য / পোশাক / প্রযুক্তি", Type: FieldText},
				{Key: KeyAddress, Label: "ঠিকানা", Placeholder: "ব্যবসার ঠিকানা", Type: FieldText},
				{Key: "social_media", Label: "📱 সোশ্যাল মিডিয়া", Placeholder: "Facebook Page / Website", Type: FieldText},
				{Key: KeyDescription, Label: "বিবরণ", Placeholder: "পণ্য/সেবা বিবরণ, প্রতিষ্ঠার সাল ইত্যাদি", Type: FieldTextarea},
			},
		},
		{
			Key:  "institution",
			Name: "শিক্ষা প্রতিষ্ঠান",
			Fields: []Field{
				{Key: KeyTitle, Label: "প্রতিষ্ঠানের নাম", Placeholder: "জেলা স্কুল", Type: FieldText, Required: true},
				{Key: KeyPhone, Label: "ফোন নম্বর", Placeholder: phonePlaceholder, Type: FieldPhone},
				{Key: KeyAddress, Label: "ঠিকানা", Placeholder: "বিস্তারিত ঠিকানা", Type: FieldText},
				{Key: "institution_type", Label: "🏫 প্রতিষ্ঠানের ধরন", Type: FieldSelect, Options: []string{"প্রাথমিক বিদ্যালয়", "মাধ্যমিক বিদ্যালয়", "কলেজ", "বিশ্ববিদ্যালয়", "মাদ্রাসা", "কারিগরি", "প্রশিক্ষণ কেন্দ্র"}},
				{Key: "principal", Label: "প্রধান শিক্ষক/অধ্যক্ষ", Placeholder: "নাম", Type: FieldText},
				{Key: KeyDescription, Label: "বিবরণ", Placeholder: "ক্লাস পরিসীমা, ছাত্র সংখ্যা ইত্যাদি", Type: FieldTextarea},
			},
		},
		{
			Key:  "teacher",
			Name: "শিক্ষক",
			Fields: []Field{
				{Key: KeyTitle, Label: "শিক্ষকের নাম", Placeholder: "মোঃ আরিফ হোসেন", Type: FieldText, Required: true},
				{Key: KeyPhone, Label: "ফোন নম্বর", Placeholder: phonePlaceholder, Type: FieldPhone, Required: true},
				{Key: "subject", Label: "📚 বিষয়", Placeholder: "গণিত / ইংরেজি / পদার্থবিজ্ঞান", Type: FieldText, Required: true},
				{Key: "class_range", Label: "📖 ক্লাস", Placeholder: "ক্লাস ৬ - ১০", Type: FieldText},
				{Key: "fee", Label: "💰 বেতন (মাসিক)", Placeholder: "২,০০০ টাকা", Type: FieldText, Highlight: true},
				{Key: "timing", Label: "⏰ পড়ানোর সময়", Placeholder: "বিকাল ৪টা - রাত ৮টা", Type: FieldText, Highlight: true},
				{Key: KeyAddress, Label: "ঠিকানা", Placeholder: "ব্যাচের ঠিকানা", Type: FieldText},
				{Key: "tuition_type", Label: "পড়ানোর ধরন", Type: FieldSelect, Options: []string{"ব্যাচ", "প্রাইভেট (বাসায়)", "অনলাইন", "কোচিং সেন্টার"}},
				{Key: KeyDescription, Label: "বিবরণ", Placeholder: "অভিজ্ঞতা, ফলাফল ইত্যাদি", Type: FieldTextarea},
			},
		},
		{
			Key:  "news",
			Name: "আজকের খবর",
			Fields: []Field{
				{Key: KeyTitle, Label: "খবরের শিরোনাম", Placeholder: "শিরোনাম লিখুন", Type: FieldText, Required: true},
				{Key: "news_source", Label: "📰 সূত্র", Placeholder: "প্রথম আলো / কালের কণ্ঠ", Type: FieldText},
				{Key: KeyDescription, Label: "বিস্তারিত খবর", Placeholder: "খবরের বিবরণ লিখুন", Type: FieldTextarea, Required: true},
			},
		},
		{
			Key:  "district_info",
			Name: "আমাদের জেলা",
			Fields: []Field{
				{Key: KeyTitle, Label: "শিরোনাম", Placeholder: "জেলার ইতিহাস / জেলা প্রশাসক", Type: FieldText, Required: true},
				{Key: KeyDescription, Label: "বিবরণ", Placeholder: "বিস্তারিত তথ্য লিখুন", Type: FieldTextarea, Required: true},
			},
		},
	}
}

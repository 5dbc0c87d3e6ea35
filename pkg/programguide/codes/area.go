package codes

// Areas enumerates NHK broadcast areas. Codes follow the program guide API;
// Hokkaido is split into seven stations and Fukuoka has a Kitakyushu area.
var Areas = MustTable(DimensionArea, []Entry{
	{Code: "010", Name: "札幌", Aliases: []string{"Sapporo"}},
	{Code: "011", Name: "函館", Aliases: []string{"Hakodate"}},
	{Code: "012", Name: "旭川", Aliases: []string{"Asahikawa"}},
	{Code: "013", Name: "帯広", Aliases: []string{"Obihiro"}},
	{Code: "014", Name: "釧路", Aliases: []string{"Kushiro"}},
	{Code: "015", Name: "北見", Aliases: []string{"Kitami"}},
	{Code: "016", Name: "室蘭", Aliases: []string{"Muroran"}},
	{Code: "020", Name: "青森", Aliases: []string{"Aomori"}},
	{Code: "030", Name: "盛岡", Aliases: []string{"Morioka"}},
	{Code: "040", Name: "仙台", Aliases: []string{"Sendai"}},
	{Code: "050", Name: "秋田", Aliases: []string{"Akita"}},
	{Code: "060", Name: "山形", Aliases: []string{"Yamagata"}},
	{Code: "070", Name: "福島", Aliases: []string{"Fukushima"}},
	{Code: "080", Name: "水戸", Aliases: []string{"Mito"}},
	{Code: "090", Name: "宇都宮", Aliases: []string{"Utsunomiya"}},
	{Code: "100", Name: "前橋", Aliases: []string{"Maebashi"}},
	{Code: "110", Name: "さいたま", Aliases: []string{"Saitama"}},
	{Code: "120", Name: "千葉", Aliases: []string{"Chiba"}},
	{Code: "130", Name: "東京", Aliases: []string{"Tokyo"}},
	{Code: "140", Name: "横浜", Aliases: []string{"Yokohama"}},
	{Code: "150", Name: "新潟", Aliases: []string{"Niigata"}},
	{Code: "160", Name: "富山", Aliases: []string{"Toyama"}},
	{Code: "170", Name: "金沢", Aliases: []string{"Kanazawa"}},
	{Code: "180", Name: "福井", Aliases: []string{"Fukui"}},
	{Code: "190", Name: "甲府", Aliases: []string{"Kofu"}},
	{Code: "200", Name: "長野", Aliases: []string{"Nagano"}},
	{Code: "210", Name: "岐阜", Aliases: []string{"Gifu"}},
	{Code: "220", Name: "静岡", Aliases: []string{"Shizuoka"}},
	{Code: "230", Name: "名古屋", Aliases: []string{"Nagoya"}},
	{Code: "240", Name: "津", Aliases: []string{"Tsu"}},
	{Code: "250", Name: "大津", Aliases: []string{"Otsu"}},
	{Code: "260", Name: "京都", Aliases: []string{"Kyoto"}},
	{Code: "270", Name: "大阪", Aliases: []string{"Osaka"}},
	{Code: "280", Name: "神戸", Aliases: []string{"Kobe"}},
	{Code: "290", Name: "奈良", Aliases: []string{"Nara"}},
	{Code: "300", Name: "和歌山", Aliases: []string{"Wakayama"}},
	{Code: "310", Name: "鳥取", Aliases: []string{"Tottori"}},
	{Code: "320", Name: "松江", Aliases: []string{"Matsue"}},
	{Code: "330", Name: "岡山", Aliases: []string{"Okayama"}},
	{Code: "340", Name: "広島", Aliases: []string{"Hiroshima"}},
	{Code: "350", Name: "山口", Aliases: []string{"Yamaguchi"}},
	{Code: "360", Name: "徳島", Aliases: []string{"Tokushima"}},
	{Code: "370", Name: "高松", Aliases: []string{"Takamatsu"}},
	{Code: "380", Name: "松山", Aliases: []string{"Matsuyama"}},
	{Code: "390", Name: "高知", Aliases: []string{"Kochi"}},
	{Code: "400", Name: "福岡", Aliases: []string{"Fukuoka"}},
	{Code: "401", Name: "北九州", Aliases: []string{"Kitakyushu"}},
	{Code: "410", Name: "佐賀", Aliases: []string{"Saga"}},
	{Code: "420", Name: "長崎", Aliases: []string{"Nagasaki"}},
	{Code: "430", Name: "熊本", Aliases: []string{"Kumamoto"}},
	{Code: "440", Name: "大分", Aliases: []string{"Oita"}},
	{Code: "450", Name: "宮崎", Aliases: []string{"Miyazaki"}},
	{Code: "460", Name: "鹿児島", Aliases: []string{"Kagoshima"}},
	{Code: "470", Name: "沖縄", Aliases: []string{"Okinawa"}},
})

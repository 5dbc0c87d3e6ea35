package codes

// Category is a major genre with its minor subdivisions.
type Category struct {
	Major   string        `json:"major"`
	Name    string        `json:"name"`
	English string        `json:"english"`
	Minors  []Subcategory `json:"minors"`
}

// Subcategory is the minor half of a genre code.
type Subcategory struct {
	Minor   string `json:"minor"`
	Name    string `json:"name"`
	English string `json:"english"`
}

var genreCategories = []Category{
	{Major: "00", Name: "ニュース／報道", English: "News/Report", Minors: []Subcategory{
		{"00", "定時・総合", "Regular/General"},
		{"01", "天気", "Weather"},
		{"02", "特集・ドキュメント", "Special/Documentary"},
		{"03", "政治・国会", "Politics/Diet"},
		{"04", "経済・市況", "Economics/Market"},
		{"05", "海外・国際", "Overseas/International"},
		{"06", "解説", "Commentary"},
		{"07", "討論・会談", "Discussion/Conference"},
		{"08", "報道特番", "News Special"},
		{"09", "ローカル・地域", "Local/Regional"},
		{"10", "交通", "Traffic"},
		{"15", "その他", "Other"},
	}},
	{Major: "01", Name: "スポーツ", English: "Sports", Minors: []Subcategory{
		{"00", "スポーツニュース", "Sports News"},
		{"01", "野球", "Baseball"},
		{"02", "サッカー", "Soccer"},
		{"03", "ゴルフ", "Golf"},
		{"04", "その他の球技", "Other Ball Games"},
		{"05", "相撲・格闘技", "Sumo/Martial Arts"},
		{"06", "オリンピック・国際大会", "Olympics/International Games"},
		{"07", "マラソン・陸上・水泳", "Marathon/Athletics/Swimming"},
		{"08", "モータースポーツ", "Motor Sports"},
		{"09", "マリン・ウィンタースポーツ", "Marine/Winter Sports"},
		{"10", "競馬・公営競技", "Horse Racing/Public Races"},
		{"15", "その他", "Other"},
	}},
	{Major: "02", Name: "情報／ワイドショー", English: "Information/Tabloid", Minors: []Subcategory{
		{"00", "芸能・ワイドショー", "Entertainment/Tabloid"},
		{"01", "ファッション", "Fashion"},
		{"02", "暮らし・住まい", "Living/Home"},
		{"03", "健康・医療", "Health/Medical"},
		{"04", "ショッピング・通販", "Shopping/Mail Order"},
		{"05", "グルメ・料理", "Gourmet/Cooking"},
		{"06", "イベント", "Events"},
		{"07", "番組紹介・お知らせ", "Program Guide/Notice"},
		{"15", "その他", "Other"},
	}},
	{Major: "03", Name: "ドラマ", English: "Drama", Minors: []Subcategory{
		{"00", "国内ドラマ", "Japanese Drama"},
		{"01", "海外ドラマ", "Overseas Drama"},
		{"02", "時代劇", "Period Drama"},
		{"15", "その他", "Other"},
	}},
	{Major: "04", Name: "音楽", English: "Music", Minors: []Subcategory{
		{"00", "国内ロック・ポップス", "Japanese Rock/Pop"},
		{"01", "海外ロック・ポップス", "Overseas Rock/Pop"},
		{"02", "クラシック・オペラ", "Classical/Opera"},
		{"03", "ジャズ・フュージョン", "Jazz/Fusion"},
		{"04", "歌謡曲・演歌", "Kayokyoku/Enka"},
		{"05", "ライブ・コンサート", "Live/Concert"},
		{"06", "ランキング・リクエスト", "Ranking/Request"},
		{"07", "カラオケ・のど自慢", "Karaoke/Amateur Singing"},
		{"08", "民謡・邦楽", "Folk/Traditional Japanese"},
		{"09", "童謡・キッズ", "Children's Songs"},
		{"10", "民族音楽・ワールドミュージック", "Ethnic/World Music"},
		{"15", "その他", "Other"},
	}},
	{Major: "05", Name: "バラエティ", English: "Variety", Minors: []Subcategory{
		{"00", "クイズ", "Quiz"},
		{"01", "ゲーム", "Game"},
		{"02", "トークバラエティ", "Talk Variety"},
		{"03", "お笑い・コメディ", "Comedy"},
		{"04", "音楽バラエティ", "Music Variety"},
		{"05", "旅バラエティ", "Travel Variety"},
		{"06", "料理バラエティ", "Cooking Variety"},
		{"15", "その他", "Other"},
	}},
	{Major: "06", Name: "映画", English: "Movies", Minors: []Subcategory{
		{"00", "洋画", "Foreign Film"},
		{"01", "邦画", "Japanese Film"},
		{"02", "アニメ", "Animation"},
		{"15", "その他", "Other"},
	}},
	{Major: "07", Name: "アニメ／特撮", English: "Animation/Special Effects", Minors: []Subcategory{
		{"00", "国内アニメ", "Japanese Animation"},
		{"01", "海外アニメ", "Overseas Animation"},
		{"02", "特撮", "Special Effects"},
		{"15", "その他", "Other"},
	}},
	{Major: "08", Name: "ドキュメンタリー／教養", English: "Documentary/Culture", Minors: []Subcategory{
		{"00", "社会・時事", "Society/Current Affairs"},
		{"01", "歴史・紀行", "History/Travel"},
		{"02", "自然・動物・環境", "Nature/Animals/Environment"},
		{"03", "宇宙・科学・医学", "Space/Science/Medicine"},
		{"04", "カルチャー・伝統文化", "Culture/Tradition"},
		{"05", "文学・文芸", "Literature"},
		{"06", "スポーツ", "Sports"},
		{"07", "ドキュメンタリー全般", "General Documentary"},
		{"08", "インタビュー・討論", "Interview/Discussion"},
		{"15", "その他", "Other"},
	}},
	{Major: "09", Name: "劇場／公演", English: "Theater/Performance", Minors: []Subcategory{
		{"00", "現代劇・新劇", "Modern Drama"},
		{"01", "ミュージカル", "Musical"},
		{"02", "ダンス・バレエ", "Dance/Ballet"},
		{"03", "落語・演芸", "Rakugo/Entertainment"},
		{"04", "歌舞伎・古典", "Kabuki/Classical"},
		{"15", "その他", "Other"},
	}},
	{Major: "10", Name: "趣味／教育", English: "Hobby/Education", Minors: []Subcategory{
		{"00", "旅・釣り・アウトドア", "Travel/Fishing/Outdoors"},
		{"01", "園芸・ペット・手芸", "Gardening/Pets/Handicrafts"},
		{"02", "音楽・美術・工芸", "Music/Art/Crafts"},
		{"03", "囲碁・将棋", "Go/Shogi"},
		{"04", "麻雀・パチンコ", "Mahjong/Pachinko"},
		{"05", "車・オートバイ", "Cars/Motorcycles"},
		{"06", "コンピュータ・ＴＶゲーム", "Computers/Video Games"},
		{"07", "会話・語学", "Conversation/Languages"},
		{"08", "幼児・小学生", "Preschool/Elementary"},
		{"09", "中学生・高校生", "Junior High/High School"},
		{"10", "大学生・受験", "University/Entrance Exams"},
		{"11", "生涯教育・資格", "Lifelong Learning/Qualifications"},
		{"12", "教育問題", "Education Issues"},
		{"15", "その他", "Other"},
	}},
	{Major: "11", Name: "福祉", English: "Welfare", Minors: []Subcategory{
		{"00", "高齢者", "Elderly"},
		{"01", "障害者", "Disabled"},
		{"02", "社会福祉", "Social Welfare"},
		{"03", "ボランティア", "Volunteering"},
		{"04", "手話", "Sign Language"},
		{"05", "文字（字幕）", "Captioning"},
		{"06", "音声解説", "Audio Description"},
		{"15", "その他", "Other"},
	}},
	{Major: "15", Name: "その他", English: "Other", Minors: []Subcategory{
		{"15", "その他", "Other"},
	}},
}

// Genres enumerates four-digit genre codes: a two-digit major category
// followed by a two-digit minor subdivision.
var Genres = MustTable(DimensionGenre, genreEntries(genreCategories))

// GenreCategories returns the major categories with their subdivisions.
func GenreCategories() []Category {
	out := make([]Category, len(genreCategories))
	for i, c := range genreCategories {
		c.Minors = append([]Subcategory(nil), c.Minors...)
		out[i] = c
	}
	return out
}

func genreEntries(categories []Category) []Entry {
	var entries []Entry
	for _, c := range categories {
		for _, m := range c.Minors {
			entries = append(entries, Entry{
				Code:    c.Major + m.Minor,
				Name:    c.Name + " - " + m.Name,
				Aliases: []string{c.English + " - " + m.English},
				Major:   c.Major,
				Minor:   m.Minor,
			})
		}
	}
	return entries
}

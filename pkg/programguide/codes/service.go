package codes

// Services enumerates broadcast services (channels). tv, radio and
// netradio select every service of that kind.
var Services = MustTable(DimensionService, []Entry{
	{Code: "g1", Name: "ＮＨＫ総合１", Aliases: []string{"NHK General 1"}},
	{Code: "g2", Name: "ＮＨＫ総合２", Aliases: []string{"NHK General 2"}},
	{Code: "e1", Name: "ＮＨＫＥテレ１", Aliases: []string{"NHK E-Tele 1"}},
	{Code: "e2", Name: "ＮＨＫＥテレ２", Aliases: []string{"NHK E-Tele 2"}},
	{Code: "e3", Name: "ＮＨＫＥテレ３", Aliases: []string{"NHK E-Tele 3"}},
	{Code: "e4", Name: "ＮＨＫワンセグ２", Aliases: []string{"NHK One Seg 2"}},
	{Code: "s1", Name: "ＮＨＫＢＳ１", Aliases: []string{"NHK BS1"}},
	{Code: "s2", Name: "ＮＨＫＢＳ１(１０２ｃｈ)", Aliases: []string{"NHK BS1 (102ch)"}},
	{Code: "s3", Name: "ＮＨＫＢＳプレミアム", Aliases: []string{"NHK BS Premium"}},
	{Code: "s4", Name: "ＮＨＫＢＳプレミアム(１０４ｃｈ)", Aliases: []string{"NHK BS Premium (104ch)"}},
	{Code: "r1", Name: "ＮＨＫラジオ第1", Aliases: []string{"NHK Radio 1"}},
	{Code: "r2", Name: "ＮＨＫラジオ第2", Aliases: []string{"NHK Radio 2"}},
	{Code: "r3", Name: "ＮＨＫＦＭ", Aliases: []string{"NHK FM"}},
	{Code: "n1", Name: "ＮＨＫネットラジオ第1", Aliases: []string{"NHK Net Radio 1"}},
	{Code: "n2", Name: "ＮＨＫネットラジオ第2", Aliases: []string{"NHK Net Radio 2"}},
	{Code: "n3", Name: "ＮＨＫネットラジオＦＭ", Aliases: []string{"NHK Net Radio FM"}},
	{Code: "tv", Name: "テレビ全て", Aliases: []string{"All TV"}},
	{Code: "radio", Name: "ラジオ全て", Aliases: []string{"All Radio"}},
	{Code: "netradio", Name: "ネットラジオ全て", Aliases: []string{"All Net Radio"}},
})

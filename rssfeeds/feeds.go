package rssfeeds

// Feed describes one RSS source
type Feed struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// Feeds is the source catalogue. IDs are referenced by the dictionary's
// SOURCE: toggle keys.
var Feeds = []Feed{
	// 総合・国内
	{ID: "yahoo", Name: "Yahoo!ニュース", URL: "https://news.yahoo.co.jp/rss/topics/top-picks.xml", Description: "総合・速報", Category: "general"},
	{ID: "nhk", Name: "NHKニュース", URL: "https://www.nhk.or.jp/rss/news/cat0.xml", Description: "国内・信頼性", Category: "general"},
	// 経済・ビジネス
	{ID: "nikkei", Name: "日本経済新聞", URL: "https://www.nikkei.com/rss/rc/nw.rdf", Description: "経済・マーケット", Category: "business"},
	{ID: "toyokeizai", Name: "東洋経済オンライン", URL: "https://toyokeizai.net/list/feed/rss", Description: "ビジネス・深掘り", Category: "business"},
	{ID: "diamond", Name: "ダイヤモンド", URL: "https://diamond.jp/list/feed/rss", Description: "ビジネス・キャリア", Category: "business"},
	// IT・ガジェット
	{ID: "itmedia_news", Name: "ITmedia NEWS", URL: "https://rss.itmedia.co.jp/rss/2.0/news_bursts.xml", Description: "IT総合・速報", Category: "tech"},
	{ID: "gigazine", Name: "GIGAZINE", URL: "https://gigazine.net/news/rss_2.0/", Description: "ガジェット・サブカル", Category: "tech"},
	{ID: "gizmodo", Name: "ギズモード", URL: "https://www.gizmodo.jp/index.xml", Description: "ガジェット・テクノロジー", Category: "tech"},
	// 技術・開発
	{ID: "zenn", Name: "Zenn", URL: "https://zenn.dev/feed", Description: "技術・プログラミング", Category: "dev"},
	{ID: "qiita", Name: "Qiita", URL: "https://qiita.com/popular-items/feed", Description: "技術・知見共有", Category: "dev"},
	// ライフスタイル・エンタメ
	{ID: "lifehacker", Name: "ライフハッカー", URL: "https://www.lifehacker.jp/feed/index.xml", Description: "仕事術・生活", Category: "life"},
	{ID: "eiga_com", Name: "映画.com", URL: "https://eiga.com/rss/news.xml", Description: "映画・新作", Category: "entertainment"},
	{ID: "number", Name: "Number Web", URL: "https://number.bunshun.jp/list/feed/rss", Description: "スポーツ・深掘り", Category: "sports"},
}

// FeedByID looks up a feed in the catalogue
func FeedByID(id string) (Feed, bool) {
	for _, feed := range Feeds {
		if feed.ID == id {
			return feed, true
		}
	}
	return Feed{}, false
}

// FilterFeeds returns the feeds whose IDs are enabled. A nil allowed set
// means no filtering (all feeds).
func FilterFeeds(allowed map[string]bool) []Feed {
	if allowed == nil {
		return Feeds
	}
	selected := make([]Feed, 0, len(allowed))
	for _, feed := range Feeds {
		if allowed[feed.ID] {
			selected = append(selected, feed)
		}
	}
	return selected
}

package rssfeeds

import "testing"

func TestCleanTitleStripsBoilerplate(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"速報のタイトル | ", "速報のタイトル"},
		{"速報のタイトル - ", "速報のタイトル"},
		{"新製品発表 | YouTubeで公開", "新製品発表"},
		{"決算解説 東洋経済オンライン", "決算解説"},
		{"2024年1月5日のヘッドラインニュース一覧", ""},
		{"そのままのタイトル", "そのままのタイトル"},
	}

	for _, c := range cases {
		if got := CleanTitle(c.in); got != c.want {
			t.Fatalf("CleanTitle(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFeedByID(t *testing.T) {
	feed, ok := FeedByID("yahoo")
	if !ok {
		t.Fatal("expected yahoo feed to exist")
	}
	if feed.Name == "" || feed.URL == "" {
		t.Fatalf("incomplete feed definition: %+v", feed)
	}

	if _, ok := FeedByID("nope"); ok {
		t.Fatal("expected unknown feed to be missing")
	}
}

func TestFilterFeeds(t *testing.T) {
	selected := FilterFeeds(map[string]bool{"yahoo": true, "zenn": true})
	if len(selected) != 2 {
		t.Fatalf("expected 2 feeds, got %d", len(selected))
	}

	if got := FilterFeeds(map[string]bool{}); len(got) != 0 {
		t.Fatalf("expected no feeds for empty allowed set, got %d", len(got))
	}

	if got := FilterFeeds(nil); len(got) != len(Feeds) {
		t.Fatalf("expected all feeds for nil allowed set, got %d", len(got))
	}
}

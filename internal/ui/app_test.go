package ui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/roster/internal/prefs"
	"github.com/five82/roster/internal/records"
	"github.com/five82/roster/internal/state"
	"github.com/five82/roster/internal/viewmodel"
)

func newTestModel(t *testing.T) (Model, *state.Store) {
	t.Helper()
	store := &state.Store{}
	store.Update(records.Sample(), "sample roster", nil)
	m := New(Options{
		Store:            store,
		SourceName:       "sample roster",
		ResetPageOnQuery: true,
		PrefsPath:        filepath.Join(t.TempDir(), "prefs.toml"),
	})
	m.copyText = func(string) error { return nil }
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model), store
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m Model, keys ...tea.KeyMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var updated tea.Model
		updated, cmd = m.Update(k)
		m = updated.(Model)
	}
	return m, cmd
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		m, _ = press(m, runes(string(r)))
	}
	return m
}

func TestCommandForKey(t *testing.T) {
	keys := DefaultKeyMap()
	cases := []struct {
		msg  tea.KeyMsg
		want viewmodel.Command
	}{
		{runes("i"), viewmodel.SetSort{Key: viewmodel.SortByID}},
		{runes("n"), viewmodel.SetSort{Key: viewmodel.SortByName}},
		{runes("d"), viewmodel.SetSort{Key: viewmodel.SortByDOB}},
		{runes("v"), viewmodel.SetSort{Key: viewmodel.SortByLastVisit}},
		{tea.KeyMsg{Type: tea.KeyLeft}, viewmodel.PrevPage{}},
		{runes("]"), viewmodel.NextPage{}},
		{tea.KeyMsg{Type: tea.KeyEsc}, viewmodel.Dismiss{}},
	}
	for _, tc := range cases {
		got, ok := commandForKey(keys, tc.msg)
		if !ok || got != tc.want {
			t.Fatalf("commandForKey(%q) = %#v, %v; want %#v", tc.msg.String(), got, ok, tc.want)
		}
	}
	if got, ok := commandForKey(keys, runes("x")); ok {
		t.Fatalf("commandForKey(x) = %#v, want no command", got)
	}
}

func TestSortKeysToggleOrder(t *testing.T) {
	m, _ := newTestModel(t)
	if m.view.Sort != viewmodel.DefaultSort() {
		t.Fatalf("initial sort = %+v, want %+v", m.view.Sort, viewmodel.DefaultSort())
	}

	m, _ = press(m, runes("n"))
	if m.view.Sort.Order != viewmodel.Descending {
		t.Fatalf("sort order after n = %v, want desc", m.view.Sort.Order)
	}

	m, _ = press(m, runes("i"))
	want := viewmodel.SortSpec{Key: viewmodel.SortByID, Order: viewmodel.Ascending}
	if m.view.Sort != want {
		t.Fatalf("sort after i = %+v, want %+v", m.view.Sort, want)
	}
}

func TestSortIsSaved(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = press(m, runes("d"), runes("d"))

	saved, err := prefs.Load(m.prefsPath)
	if err != nil {
		t.Fatalf("prefs.Load: %v", err)
	}
	if saved.Sort != "dob" || saved.Order != "desc" {
		t.Fatalf("saved sort = %q %q, want dob desc", saved.Sort, saved.Order)
	}
	if saved.Theme != m.theme.Name {
		t.Fatalf("saved theme = %q, want %q", saved.Theme, m.theme.Name)
	}
}

func TestRestoreState(t *testing.T) {
	st := restoreState(prefs.Prefs{Sort: "lastVisit", Order: "desc"})
	want := viewmodel.SortSpec{Key: viewmodel.SortByLastVisit, Order: viewmodel.Descending}
	if st.Sort != want {
		t.Fatalf("restoreState sort = %+v, want %+v", st.Sort, want)
	}

	st = restoreState(prefs.Prefs{Sort: "shoe size", Order: "sideways"})
	if st.Sort != viewmodel.DefaultSort() {
		t.Fatalf("restoreState with junk = %+v, want default", st.Sort)
	}
}

func TestSearchFiltersAsYouType(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = press(m, runes("/"))
	if !m.searching {
		t.Fatal("expected search input to be active after /")
	}

	m = typeText(m, "heena")
	if m.view.Query != "heena" {
		t.Fatalf("query = %q, want heena", m.view.Query)
	}
	if m.view.TotalCount != 1 || m.view.Items[0].Name != "Heena West" {
		t.Fatalf("results = %d %v, want only Heena West", m.view.TotalCount, m.view.Items)
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.searching {
		t.Fatal("expected enter to leave the search input")
	}
	if m.view.Query != "heena" {
		t.Fatalf("query after enter = %q, want heena", m.view.Query)
	}
	if !strings.Contains(m.View(), "Showing 1 to 1 of 1 results") {
		t.Fatalf("footer missing from view:\n%s", m.View())
	}
}

func TestSearchNoMatches(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = press(m, runes("/"))
	m = typeText(m, "zzz")

	if m.view.TotalCount != 0 || len(m.view.Items) != 0 {
		t.Fatalf("results = %d, want 0", m.view.TotalCount)
	}
	if m.view.Current != 1 || m.view.TotalPages != 1 {
		t.Fatalf("page = %d/%d, want 1/1", m.view.Current, m.view.TotalPages)
	}
	if _, ok := m.selectedRecord(); ok {
		t.Fatal("expected no selected record on an empty page")
	}
	if !strings.Contains(m.View(), "Showing 0 to 0 of 0 results") {
		t.Fatalf("empty footer missing from view:\n%s", m.View())
	}
}

func TestPagingKeys(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRight})
	if m.view.Current != 2 {
		t.Fatalf("page after right = %d, want 2", m.view.Current)
	}
	if len(m.view.Items) != 4 {
		t.Fatalf("items on page 2 = %d, want 4", len(m.view.Items))
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRight})
	if m.view.Current != 2 {
		t.Fatalf("page after right on last page = %d, want 2", m.view.Current)
	}

	m, _ = press(m, runes("1"))
	if m.view.Current != 1 {
		t.Fatalf("page after 1 = %d, want 1", m.view.Current)
	}

	m, _ = press(m, runes("5"))
	if m.view.Current != 1 {
		t.Fatalf("page after 5 = %d, want 1 (no fifth page)", m.view.Current)
	}
}

func TestMenuOpensAndEscDismisses(t *testing.T) {
	m, _ := newTestModel(t)
	first := m.view.Items[0].ID

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view.OpenMenu != first {
		t.Fatalf("OpenMenu = %q, want %q", m.view.OpenMenu, first)
	}
	if _, ok := m.modal.(rowMenu); !ok {
		t.Fatalf("modal = %T, want rowMenu", m.modal)
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view.OpenMenu != "" {
		t.Fatalf("OpenMenu after esc = %q, want empty", m.view.OpenMenu)
	}
	if m.modal != nil {
		t.Fatalf("modal after esc = %T, want nil", m.modal)
	}
}

func TestMenuFollowsCursor(t *testing.T) {
	m, _ := newTestModel(t)
	second := m.view.Items[1].ID

	m, _ = press(m, runes("j"), runes("m"))
	if m.view.OpenMenu != second {
		t.Fatalf("OpenMenu = %q, want %q", m.view.OpenMenu, second)
	}
}

func TestMenuViewDetails(t *testing.T) {
	m, _ := newTestModel(t)
	first := m.view.Items[0]

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from the menu")
	}
	if m.view.OpenMenu != "" {
		t.Fatalf("OpenMenu after choosing = %q, want empty", m.view.OpenMenu)
	}

	updated, _ := m.Update(cmd())
	m = updated.(Model)
	detail, ok := m.modal.(detailModal)
	if !ok {
		t.Fatalf("modal = %T, want detailModal", m.modal)
	}
	if detail.record.ID != first.ID {
		t.Fatalf("detail record = %q, want %q", detail.record.ID, first.ID)
	}
	if !strings.Contains(m.View(), first.Name) {
		t.Fatalf("detail view missing %q", first.Name)
	}

	m, _ = press(m, runes("x"))
	if m.modal != nil {
		t.Fatalf("modal after key = %T, want nil", m.modal)
	}
}

func TestMenuOtherActionsFlash(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})

	updated, _ := m.Update(cmd())
	m = updated.(Model)
	if m.modal != nil {
		t.Fatalf("modal = %T, want nil", m.modal)
	}
	if !strings.Contains(m.flash, "Edit Patient") {
		t.Fatalf("flash = %q, want Edit Patient notice", m.flash)
	}
}

func TestSnapshotReplaceKeepsQuery(t *testing.T) {
	m, store := newTestModel(t)
	m, _ = press(m, runes("/"))
	m = typeText(m, "cooper")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view.TotalCount != 2 {
		t.Fatalf("cooper matches = %d, want 2", m.view.TotalCount)
	}

	store.Update(records.Sample()[:5], "sample roster", nil)
	updated, _ := m.Update(snapshotMsg(store.Snapshot()))
	m = updated.(Model)

	if m.view.Query != "cooper" {
		t.Fatalf("query after reload = %q, want cooper", m.view.Query)
	}
	if m.view.TotalCount != 1 {
		t.Fatalf("cooper matches after reload = %d, want 1", m.view.TotalCount)
	}
}

func TestSnapshotSameGenerationIsIgnored(t *testing.T) {
	m, store := newTestModel(t)
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRight})

	store.Update(nil, "sample roster", errors.New("boom"))
	updated, _ := m.Update(snapshotMsg(store.Snapshot()))
	m = updated.(Model)

	if m.view.Current != 2 || m.view.TotalCount != 15 {
		t.Fatalf("view after failed reload = page %d of %d records, want page 2 of 15", m.view.Current, m.view.TotalCount)
	}
	if !strings.Contains(m.View(), "reload failed") {
		t.Fatalf("status missing reload failure:\n%s", m.View())
	}
}

func TestMenuClosesWhenRecordVanishes(t *testing.T) {
	m, store := newTestModel(t)
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	open := m.view.OpenMenu

	var kept []records.Record
	for _, rec := range records.Sample() {
		if rec.ID != open {
			kept = append(kept, rec)
		}
	}
	store.Update(kept, "sample roster", nil)
	updated, _ := m.Update(snapshotMsg(store.Snapshot()))
	m = updated.(Model)

	if m.view.OpenMenu != "" || m.modal != nil {
		t.Fatalf("menu still open on removed record %q", open)
	}
}

func TestCopySelectedID(t *testing.T) {
	m, _ := newTestModel(t)
	var copied string
	m.copyText = func(s string) error {
		copied = s
		return nil
	}

	m, cmd := press(m, runes("y"))
	if cmd == nil {
		t.Fatal("expected a copy command")
	}
	updated, _ := m.Update(cmd())
	m = updated.(Model)

	want := m.view.Items[0].ID
	if copied != want {
		t.Fatalf("copied %q, want %q", copied, want)
	}
	if !strings.Contains(m.flash, want) {
		t.Fatalf("flash = %q, want it to mention %q", m.flash, want)
	}
}

func TestCopyFailureFlashes(t *testing.T) {
	m, _ := newTestModel(t)
	m.copyText = func(string) error { return errors.New("no clipboard") }

	m, cmd := press(m, runes("y"))
	updated, _ := m.Update(cmd())
	m = updated.(Model)
	if !strings.Contains(m.flash, "no clipboard") {
		t.Fatalf("flash = %q, want the clipboard error", m.flash)
	}
}

func TestFlashExpires(t *testing.T) {
	m, _ := newTestModel(t)
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }
	m.setFlash("hello there")
	if !strings.Contains(m.renderStatus(), "hello there") {
		t.Fatal("expected fresh flash in status")
	}
	now = now.Add(FlashDuration + time.Second)
	if strings.Contains(m.renderStatus(), "hello there") {
		t.Fatal("expected flash to expire")
	}
}

func TestNavAndNewPatientAreStubs(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyTab})
	msg, ok := cmd().(NavSelected)
	if !ok || msg.Label != "Communications" {
		t.Fatalf("tab emitted %#v, want NavSelected{Communications}", msg)
	}
	updated, _ := m.Update(msg)
	m = updated.(Model)
	if !strings.Contains(m.flash, "Communications") {
		t.Fatalf("flash = %q, want Communications notice", m.flash)
	}

	_, cmd = press(m, runes("a"))
	if _, ok := cmd().(NewRecordRequested); !ok {
		t.Fatal("expected a NewRecordRequested message")
	}
}

func TestFooterAndPager(t *testing.T) {
	m, _ := newTestModel(t)
	view := m.View()
	for _, want := range []string{"Showing 1 to 11 of 15 results", "01", "02", prevLabel, nextLabel, "Patients List"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestPagerItems(t *testing.T) {
	v := viewmodel.View{
		Page:        viewmodel.Page{Current: 2, TotalPages: 3},
		PageNumbers: []int{1, 2, 3},
		HasPrev:     true,
		HasNext:     true,
	}
	items := pagerItems(v)
	if len(items) != 5 {
		t.Fatalf("pagerItems len = %d, want 5", len(items))
	}
	if items[0].label != prevLabel || !items[0].enabled {
		t.Fatalf("first item = %+v, want enabled Previous", items[0])
	}
	if items[2].label != "02" || !items[2].active {
		t.Fatalf("page 2 item = %+v, want active 02", items[2])
	}
	if items[1].active || items[3].active {
		t.Fatal("only the current page should be active")
	}

	v.HasNext = false
	if last := pagerItems(v)[4]; last.label != nextLabel || last.enabled {
		t.Fatalf("last item = %+v, want disabled Next", last)
	}
}

func TestHelpToggle(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = press(m, runes("?"))
	if !m.showHelp {
		t.Fatal("expected help after ?")
	}
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatal("help overlay not rendered")
	}
	m, _ = press(m, runes("n"))
	if m.showHelp {
		t.Fatal("expected any key to close help")
	}
	if m.view.Sort != viewmodel.DefaultSort() {
		t.Fatal("key that closed help should not change the sort")
	}
}

func TestHelpSections(t *testing.T) {
	sections := helpSections(DefaultKeyMap())
	if len(sections) != len(helpSectionTitles) {
		t.Fatalf("helpSections = %d, want %d", len(sections), len(helpSectionTitles))
	}
	for i, s := range sections {
		if s.title != helpSectionTitles[i] {
			t.Fatalf("section %d title = %q, want %q", i, s.title, helpSectionTitles[i])
		}
		if len(s.items) == 0 {
			t.Fatalf("section %q has no items", s.title)
		}
	}
}

func TestCycleThemeIsSaved(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = press(m, runes("T"))
	if m.theme.Name != "Kanagawa" {
		t.Fatalf("theme = %q, want Kanagawa", m.theme.Name)
	}
	saved, err := prefs.Load(m.prefsPath)
	if err != nil {
		t.Fatalf("prefs.Load: %v", err)
	}
	if saved.Theme != "Kanagawa" {
		t.Fatalf("saved theme = %q, want Kanagawa", saved.Theme)
	}
}

func TestActivityShowsLogLines(t *testing.T) {
	m, _ := newTestModel(t)
	m, cmd := press(m, runes("L"))
	if !m.activity.visible {
		t.Fatal("expected activity view after L")
	}
	if cmd == nil {
		t.Fatal("expected a read command")
	}

	line := `{"time":"2024-05-01T10:00:00Z","level":"WARN","msg":"reload failed","path":"/tmp/x.json"}`
	updated, _ := m.Update(activityMsg{lines: []string{line}})
	m = updated.(Model)
	view := m.View()
	if !strings.Contains(view, "reload failed") || !strings.Contains(view, "path=/tmp/x.json") {
		t.Fatalf("activity view missing entry:\n%s", view)
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.activity.visible {
		t.Fatal("expected esc to close the activity view")
	}
}

func TestAgeOn(t *testing.T) {
	now := time.Date(2024, 7, 21, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		dob  string
		age  int
		okay bool
	}{
		{"22-07-1940", 83, true},
		{"21-07-1940", 84, true},
		{"31-02-1990", 0, false},
		{"01-01-2030", 0, false},
	}
	for _, tc := range cases {
		age, ok := ageOn(records.Record{DOB: tc.dob}, now)
		if age != tc.age || ok != tc.okay {
			t.Fatalf("ageOn(%s) = %d, %v; want %d, %v", tc.dob, age, ok, tc.age, tc.okay)
		}
	}
}

func TestPatientColumnsCompact(t *testing.T) {
	wide := patientColumns(150)
	if len(wide) != 6 {
		t.Fatalf("wide columns = %d, want 6", len(wide))
	}
	narrow := patientColumns(80)
	if len(narrow) != 5 {
		t.Fatalf("narrow columns = %d, want 5", len(narrow))
	}
	for _, c := range narrow {
		if c.title == contactColumn.title {
			t.Fatal("narrow layout should drop the contact column")
		}
		if c.sortKey == viewmodel.SortByName && c.width < minNameWidth {
			t.Fatalf("name width = %d, want at least %d", c.width, minNameWidth)
		}
	}
}

func TestTableColumnsShowSortArrow(t *testing.T) {
	v := viewmodel.View{Sort: viewmodel.SortSpec{Key: viewmodel.SortByDOB, Order: viewmodel.Descending}}
	cols := tableColumns(patientColumns(150), v)
	if cols[2].Title != "Date of Birth ▼" {
		t.Fatalf("dob title = %q, want arrow", cols[2].Title)
	}
	if cols[1].Title != "Name" {
		t.Fatalf("name title = %q, want no arrow", cols[1].Title)
	}
}

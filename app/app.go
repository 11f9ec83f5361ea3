// Package app wires the Studyport views together: the root Bubble Tea model
// owns every sub-model and all traffic between the REST client and the UI.
package app

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/studyport/studyport-tui/client"
	"github.com/studyport/studyport-tui/config"
	"github.com/studyport/studyport-tui/fsm"
	"github.com/studyport/studyport-tui/msg"
	"github.com/studyport/studyport-tui/store"
	"github.com/studyport/studyport-tui/style"
	"github.com/studyport/studyport-tui/ui/anim"
	"github.com/studyport/studyport-tui/ui/clipboard"
	"github.com/studyport/studyport-tui/ui/header"
	"github.com/studyport/studyport-tui/ui/palette"
	"github.com/studyport/studyport-tui/ui/status"
	"github.com/studyport/studyport-tui/ui/toast"
	"github.com/studyport/studyport-tui/ui/vlist"
)

// Version is stamped by the build; main passes it through.
var Version = "dev"

const (
	recentSearchKey = "recent_searches"
	welcomeSeenKey  = "welcome_seen"
)

// -- Internal message types ---------------------------------------------------

type toastTick struct{}
type retryHealth struct{}

// -- Model --------------------------------------------------------------------

// Model is the root Bubble Tea model.
type Model struct {
	header header.Model
	status status.Model
	toasts toast.Model
	search palette.Model

	schools vlist.List[msg.School]
	cases   vlist.Grid[msg.AdmissionCase]
	recs    vlist.List[msg.Recommendation]
	notifs  vlist.List[msg.Notification]
	prompts vlist.List[msg.EssayPrompt]

	// cur is shared with the render closures so the highlight follows the
	// cursor without rebuilding the lists.
	cur *cursors

	recFlow fsm.Machine[RecState]
	spinner anim.Model

	state  State
	view   View
	layout Layout

	client *client.Client
	store  *store.Store
	cfg    config.Config

	detail    string // rendered markdown for the open item
	detailRaw string // markdown source, for copy

	schoolQuery string
	schoolsPage int
	casesPage   int

	keys   KeyMap
	width  int
	height int
}

// New constructs the root Model.
func New(c *client.Client, st *store.Store, cfg config.Config) Model {
	cur := &cursors{width: 80}

	schools := vlist.NewList(schoolRow(cur))
	schools.SetItemHeight(schoolRowHeight)
	schools.SetGap(listGap)
	schools.SetKeyFunc(schoolKey)
	schools.SetEmptyState("no schools match — press / to search")

	cases := vlist.NewGrid(caseCard, caseRowHeight)
	cases.SetGap(1, 2)
	cases.SetEmptyState("no shared admission cases yet")

	recs := vlist.NewList(recRow(cur))
	recs.SetItemHeight(recRowHeight)
	recs.SetGap(listGap)
	recs.SetKeyFunc(recKey)
	recs.SetEmptyState("press g to generate recommendations")

	notifs := vlist.NewList(notifRow(cur))
	notifs.SetItemHeight(notifRowHeight)
	notifs.SetGap(listGap)
	notifs.SetKeyFunc(notifKey)
	notifs.SetEmptyState("inbox is empty")

	prompts := vlist.NewList(promptRow(cur))
	prompts.SetItemHeight(promptRowHeight)
	prompts.SetGap(listGap)
	prompts.SetKeyFunc(promptKey)
	prompts.SetEmptyState("no prompts awaiting review")

	if cfg.NoColor {
		schools.SetAnimated(false)
		recs.SetAnimated(false)
		notifs.SetAnimated(false)
		prompts.SetAnimated(false)
	}

	spinner := anim.New(anim.Opts{Label: "connecting"})
	spinner.Start()

	return Model{
		header:  header.New(Version),
		status:  status.New(),
		toasts:  toast.New(),
		search:  palette.New(),
		schools: schools,
		cases:   cases,
		recs:    recs,
		notifs:  notifs,
		prompts: prompts,
		cur:     cur,
		recFlow: fsm.New(RecIdle, recTransitions),
		spinner: spinner,
		state:   StateConnecting,
		view:    ViewSchools,
		client:  c,
		store:   st,
		cfg:     cfg,
		keys:    DefaultKeyMap(),
		width:   80,
		height:  24,
	}
}

// -- Init ---------------------------------------------------------------------

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.checkHealth(),
		m.spinner.Tick(),
		func() tea.Msg { return tea.RequestWindowSize() },
	)
}

// -- Update -------------------------------------------------------------------

func (m Model) Update(rawMsg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := rawMsg.(type) {

	case tea.WindowSizeMsg:
		m.width = v.Width
		m.height = v.Height
		m.recomputeLayout()
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(v)

	case tea.MouseWheelMsg:
		if m.state != StateReady {
			return m, nil
		}
		return m.updateActiveView(rawMsg)

	// Animation plumbing: reveal ticks and spinner frames are ID-keyed, so
	// broadcasting to every list is safe.
	case vlist.RevealTickMsg, anim.TickMsg:
		var cmds []tea.Cmd
		var cmd tea.Cmd
		m.schools, cmd = m.schools.Update(rawMsg)
		cmds = append(cmds, cmd)
		m.recs, cmd = m.recs.Update(rawMsg)
		cmds = append(cmds, cmd)
		m.notifs, cmd = m.notifs.Update(rawMsg)
		cmds = append(cmds, cmd)
		m.prompts, cmd = m.prompts.Update(rawMsg)
		cmds = append(cmds, cmd)
		m.spinner, cmd = m.spinner.Update(rawMsg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case toastTick:
		m.toasts.Tick()
		if m.toasts.HasToasts() {
			return m, m.toastTickCmd()
		}
		return m, nil

	case msg.ClearStatus:
		m.status.ClearMessage()
		return m, nil

	// -- Health / lifecycle --

	case msg.HealthResult:
		return m.handleHealth(v)

	case retryHealth:
		return m, m.checkHealth()

	// -- Data results --

	case msg.SchoolPageResult:
		return m.handleSchoolPage(v)

	case msg.CasePageResult:
		return m.handleCasePage(v)

	case msg.RecommendationsResult:
		return m.handleRecommendations(v)

	case msg.NotificationsResult:
		return m.handleNotifications(v)

	case msg.PointsResult:
		if v.Err == nil {
			m.header.SetPoints(v.Balance)
		}
		return m, nil

	case msg.PromptsResult:
		if v.Err != nil {
			m.toasts.Add("failed to load review queue", toast.Error)
			return m, m.toastTickCmd()
		}
		m.prompts.SetItems(v.Prompts)
		m.clampCursors()
		return m, m.prompts.RevealCmd()

	case msg.ScrapeTriggered:
		if v.Err != nil {
			m.toasts.Add("scrape failed: "+v.Err.Error(), toast.Error)
		} else {
			m.toasts.Add("scrape started for "+v.SchoolID, toast.Success)
		}
		return m, m.toastTickCmd()

	case msg.PromptVerified:
		return m.handlePromptVerified(v)

	case msg.NotificationRead:
		return m.handleNotificationRead(v)

	// -- Search palette --

	case palette.SubmitMsg:
		m.state = StateReady
		m.view = ViewSchools
		m.schoolQuery = v.Query
		m.schoolsPage = 0
		if v.Query != "" {
			m.store.PushRecent(recentSearchKey, v.Query, 5)
		}
		m.status.SetMessage("searching…", status.Neutral)
		return m, m.fetchSchools(v.Query, 1)

	case palette.DismissMsg:
		m.state = StateReady
		return m, nil
	}

	return m, nil
}

// -- Key handling -------------------------------------------------------------

func (m Model) handleKey(k tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, whatever the state.
	if k.String() == "ctrl+c" {
		return m, m.quit()
	}

	switch m.state {
	case StateSearch:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(k)
		return m, cmd

	case StateDetail:
		switch {
		case key.Matches(k, m.keys.Back), key.Matches(k, m.keys.Quit), key.Matches(k, m.keys.Open):
			m.state = StateReady
			m.detail = ""
			m.detailRaw = ""
		case key.Matches(k, m.keys.Copy):
			return m.copyText(m.detailRaw)
		}
		return m, nil

	case StateConnecting:
		if key.Matches(k, m.keys.Quit) {
			return m, m.quit()
		}
		if key.Matches(k, m.keys.Refresh) {
			return m, m.checkHealth()
		}
		return m, nil
	}

	return m.handleReadyKey(k)
}

func (m Model) handleReadyKey(k tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(k, m.keys.Quit):
		return m, m.quit()

	case key.Matches(k, m.keys.NextView):
		m.setView(m.nextView(+1))
		return m, nil

	case key.Matches(k, m.keys.PrevView):
		m.setView(m.nextView(-1))
		return m, nil

	case key.Matches(k, m.keys.Search):
		m.state = StateSearch
		m.search.Show(m.store.GetStrings(recentSearchKey), m.width)
		return m, nil

	case key.Matches(k, m.keys.Help):
		m.detail = renderMarkdown(helpMarkdown(m.cfg.Admin), min(m.width-4, 100))
		m.detailRaw = ""
		m.state = StateDetail
		return m, nil

	case key.Matches(k, m.keys.Up):
		return m, m.moveCursor(-1)

	case key.Matches(k, m.keys.Down):
		return m, m.moveCursor(+1)

	case key.Matches(k, m.keys.PageUp):
		return m, m.activePageUp()

	case key.Matches(k, m.keys.PageDown):
		return m, m.activePageDown()

	case key.Matches(k, m.keys.HalfPageUp):
		return m, m.activeScrollBy(-m.layout.BodyHeight / 2)

	case key.Matches(k, m.keys.HalfPageDown):
		return m, m.activeScrollBy(m.layout.BodyHeight / 2)

	case key.Matches(k, m.keys.Top):
		m.setCursor(0)
		return m, m.activeScrollBy(-1 << 30)

	case key.Matches(k, m.keys.Bottom):
		m.setCursor(1 << 30)
		m.clampCursors()
		return m, m.activeScrollBy(1 << 30)

	case key.Matches(k, m.keys.Open):
		return m.openDetail()

	case key.Matches(k, m.keys.Refresh):
		return m.refreshView()

	case key.Matches(k, m.keys.Generate):
		return m.generateRecommendations()

	case key.Matches(k, m.keys.MarkRead):
		return m.markSelectedRead()

	case key.Matches(k, m.keys.Approve):
		return m.verifySelected(true)

	case key.Matches(k, m.keys.Reject):
		return m.verifySelected(false)

	case key.Matches(k, m.keys.Scrape):
		return m.scrapeSelected()

	case key.Matches(k, m.keys.Copy):
		return m.copySelected()
	}

	return m, nil
}

// -- Handlers -------------------------------------------------------------------

func (m Model) handleHealth(h msg.HealthResult) (Model, tea.Cmd) {
	if h.Err != nil {
		m.header.SetOnline(false)
		m.status.SetMessage("backend unreachable, retrying…", status.Error)
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg { return retryHealth{} })
	}

	m.header.SetOnline(true)
	m.header.SetVersion(h.Version)
	m.status.ClearMessage()
	m.spinner.Stop()

	first := m.state == StateConnecting
	m.state = StateReady
	m.refreshHints()

	if !first {
		return m, nil
	}
	cmds := []tea.Cmd{
		m.fetchSchools("", 1),
		m.fetchCases(1),
		m.fetchPoints(),
		m.fetchNotifications(),
	}
	if m.cfg.Admin {
		cmds = append(cmds, m.fetchPrompts())
	}
	if _, seen := m.store.Get(welcomeSeenKey); !seen {
		m.store.Set(welcomeSeenKey, "1")
		m.toasts.Add("welcome to Studyport — press ? for keys", toast.Info)
		cmds = append(cmds, m.toastTickCmd())
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleSchoolPage(v msg.SchoolPageResult) (Model, tea.Cmd) {
	_ = m.schools.SetLoadingMore(false)
	if v.Err != nil {
		m.toasts.Add("failed to load schools", toast.Error)
		return m, m.toastTickCmd()
	}
	if v.Query != m.schoolQuery {
		// Stale page from a superseded search.
		return m, nil
	}

	if v.Page <= 1 {
		m.schools.SetItems(v.Schools)
		m.cur.schools = 0
	} else {
		m.schools.AppendItems(v.Schools...)
	}
	m.schoolsPage = v.Page
	m.schools.SetHasMore(v.HasMore)
	m.schools.SetLoadMore(m.fetchSchools(v.Query, v.Page+1))
	m.status.ClearMessage()
	m.refreshHints()
	return m, m.schools.RevealCmd()
}

func (m Model) handleCasePage(v msg.CasePageResult) (Model, tea.Cmd) {
	m.cases.SetLoadingMore(false)
	if v.Err != nil {
		m.toasts.Add("failed to load cases", toast.Error)
		return m, m.toastTickCmd()
	}

	if v.Page <= 1 {
		m.cases.SetItems(v.Cases)
	} else {
		m.cases.AppendItems(v.Cases...)
	}
	m.casesPage = v.Page
	m.cases.SetHasMore(v.HasMore)
	m.cases.SetLoadMore(m.fetchCases(v.Page + 1))
	m.refreshHints()
	return m, nil
}

func (m Model) handleRecommendations(v msg.RecommendationsResult) (Model, tea.Cmd) {
	m.spinner.Stop()
	if v.Err != nil {
		if err := m.recFlow.Transition(RecFailed); err == nil {
			m.toasts.Add("recommendation fetch failed", toast.Error)
		}
		return m, m.toastTickCmd()
	}
	if err := m.recFlow.Transition(RecReady); err != nil {
		// Result arrived outside a running generation; drop it.
		return m, nil
	}
	m.recs.SetItems(v.Recommendations)
	m.cur.recs = 0
	m.refreshHints()
	return m, m.recs.RevealCmd()
}

func (m Model) handleNotifications(v msg.NotificationsResult) (Model, tea.Cmd) {
	if v.Err != nil {
		// Poll failures are transient; show in the status bar, not a toast.
		m.status.SetMessage("notification poll failed", status.Error)
		return m, m.clearStatusCmd()
	}
	m.notifs.SetItems(v.Notifications)
	m.clampCursors()
	m.header.SetUnread(countUnread(v.Notifications))
	return m, m.notifs.RevealCmd()
}

func (m Model) handlePromptVerified(v msg.PromptVerified) (Model, tea.Cmd) {
	if v.Err != nil {
		m.toasts.Add("verify failed: "+v.Err.Error(), toast.Error)
		return m, m.toastTickCmd()
	}
	kept := make([]msg.EssayPrompt, 0, m.prompts.Len())
	for _, p := range m.prompts.Items() {
		if p.ID != v.ID {
			kept = append(kept, p)
		}
	}
	m.prompts.SetItems(kept)
	m.clampCursors()
	if v.Approved {
		m.toasts.Add("prompt approved", toast.Success)
	} else {
		m.toasts.Add("prompt rejected", toast.Info)
	}
	return m, m.toastTickCmd()
}

func (m Model) handleNotificationRead(v msg.NotificationRead) (Model, tea.Cmd) {
	if v.Err != nil {
		m.toasts.Add("mark read failed", toast.Error)
		return m, m.toastTickCmd()
	}
	items := m.notifs.Items()
	updated := make([]msg.Notification, len(items))
	copy(updated, items)
	for i := range updated {
		if updated[i].ID == v.ID {
			updated[i].Read = true
		}
	}
	m.notifs.SetItems(updated)
	m.header.SetUnread(countUnread(updated))
	return m, nil
}

// -- View actions -----------------------------------------------------------------

func (m *Model) setView(v View) {
	m.view = v
	m.refreshHints()
}

func (m Model) nextView(dir int) View {
	views := []View{ViewSchools, ViewCases, ViewRecommendations, ViewNotifications}
	if m.cfg.Admin {
		views = append(views, ViewPrompts)
	}
	for i, v := range views {
		if v == m.view {
			return views[(i+dir+len(views))%len(views)]
		}
	}
	return ViewSchools
}

func (m Model) openDetail() (tea.Model, tea.Cmd) {
	var md string
	var cmd tea.Cmd
	switch m.view {
	case ViewSchools:
		if s, ok := selected(m.schools.Items(), m.cur.schools); ok {
			md = schoolMarkdown(s)
		}
	case ViewRecommendations:
		if r, ok := selected(m.recs.Items(), m.cur.recs); ok {
			md = recMarkdown(r)
		}
	case ViewNotifications:
		if n, ok := selected(m.notifs.Items(), m.cur.notifs); ok {
			md = notifMarkdown(n)
			if !n.Read {
				cmd = m.markRead(n.ID)
			}
		}
	case ViewPrompts:
		if p, ok := selected(m.prompts.Items(), m.cur.prompts); ok {
			md = promptMarkdown(p)
		}
	}
	if md == "" {
		return m, nil
	}
	m.detail = renderMarkdown(md, min(m.width-4, 100))
	m.detailRaw = md
	m.state = StateDetail
	return m, cmd
}

func (m Model) refreshView() (tea.Model, tea.Cmd) {
	switch m.view {
	case ViewSchools:
		return m, m.fetchSchools(m.schoolQuery, 1)
	case ViewCases:
		return m, m.fetchCases(1)
	case ViewRecommendations:
		return m.generateRecommendations()
	case ViewNotifications:
		return m, m.fetchNotifications()
	case ViewPrompts:
		if m.cfg.Admin {
			return m, m.fetchPrompts()
		}
	}
	return m, nil
}

func (m Model) generateRecommendations() (tea.Model, tea.Cmd) {
	if m.view != ViewRecommendations {
		return m, nil
	}
	if err := m.recFlow.Transition(RecLoading); err != nil {
		// Already generating.
		return m, nil
	}
	m.spinner.SetLabel("generating recommendations")
	m.spinner.Start()
	return m, tea.Batch(m.fetchRecommendations(), m.spinner.Tick())
}

func (m Model) markSelectedRead() (tea.Model, tea.Cmd) {
	if m.view != ViewNotifications {
		return m, nil
	}
	n, ok := selected(m.notifs.Items(), m.cur.notifs)
	if !ok || n.Read {
		return m, nil
	}
	return m, m.markRead(n.ID)
}

func (m Model) verifySelected(approve bool) (tea.Model, tea.Cmd) {
	if m.view != ViewPrompts || !m.cfg.Admin {
		return m, nil
	}
	p, ok := selected(m.prompts.Items(), m.cur.prompts)
	if !ok {
		return m, nil
	}
	return m, m.verifyPrompt(p.ID, approve)
}

func (m Model) scrapeSelected() (tea.Model, tea.Cmd) {
	if m.view != ViewSchools || !m.cfg.Admin {
		return m, nil
	}
	s, ok := selected(m.schools.Items(), m.cur.schools)
	if !ok {
		return m, nil
	}
	return m, m.triggerScrape(s.ID)
}

// copySelected copies the highlighted item's markdown source.
func (m Model) copySelected() (tea.Model, tea.Cmd) {
	var md string
	switch m.view {
	case ViewSchools:
		if s, ok := selected(m.schools.Items(), m.cur.schools); ok {
			md = schoolMarkdown(s)
		}
	case ViewRecommendations:
		if r, ok := selected(m.recs.Items(), m.cur.recs); ok {
			md = recMarkdown(r)
		}
	case ViewNotifications:
		if n, ok := selected(m.notifs.Items(), m.cur.notifs); ok {
			md = notifMarkdown(n)
		}
	case ViewPrompts:
		if p, ok := selected(m.prompts.Items(), m.cur.prompts); ok {
			md = promptMarkdown(p)
		}
	}
	return m.copyText(md)
}

func (m Model) copyText(text string) (tea.Model, tea.Cmd) {
	if text == "" {
		return m, nil
	}
	if err := clipboard.Copy(text); err != nil {
		m.toasts.Add("copy failed", toast.Error)
	} else {
		m.toasts.Add("copied to clipboard", toast.Success)
	}
	return m, m.toastTickCmd()
}

func (m Model) quit() tea.Cmd {
	return tea.Quit
}

// -- Cursor / scrolling --------------------------------------------------------------

func (m *Model) moveCursor(delta int) tea.Cmd {
	switch m.view {
	case ViewSchools:
		m.cur.schools = clampIndex(m.cur.schools+delta, m.schools.Len())
		return keepVisible(&m.schools, m.cur.schools, schoolRowHeight, m.layout.BodyHeight)
	case ViewCases:
		return m.cases.ScrollBy(delta * (caseRowHeight + 1))
	case ViewRecommendations:
		m.cur.recs = clampIndex(m.cur.recs+delta, m.recs.Len())
		return keepVisible(&m.recs, m.cur.recs, recRowHeight, m.layout.BodyHeight)
	case ViewNotifications:
		m.cur.notifs = clampIndex(m.cur.notifs+delta, m.notifs.Len())
		return keepVisible(&m.notifs, m.cur.notifs, notifRowHeight, m.layout.BodyHeight)
	case ViewPrompts:
		m.cur.prompts = clampIndex(m.cur.prompts+delta, m.prompts.Len())
		return keepVisible(&m.prompts, m.cur.prompts, promptRowHeight, m.layout.BodyHeight)
	}
	return nil
}

// keepVisible scrolls just enough to keep the cursor row inside the viewport.
func keepVisible[T any](l *vlist.List[T], index, itemH, viewH int) tea.Cmd {
	start := index * (itemH + listGap)
	end := start + itemH
	top := l.Offset()
	if start < top {
		return l.ScrollTo(start)
	}
	if end > top+viewH {
		return l.ScrollTo(end - viewH)
	}
	return nil
}

func (m *Model) setCursor(i int) {
	switch m.view {
	case ViewSchools:
		m.cur.schools = i
	case ViewRecommendations:
		m.cur.recs = i
	case ViewNotifications:
		m.cur.notifs = i
	case ViewPrompts:
		m.cur.prompts = i
	}
}

// clampCursors keeps every cursor inside its list after items change.
func (m *Model) clampCursors() {
	m.cur.schools = clampIndex(m.cur.schools, m.schools.Len())
	m.cur.recs = clampIndex(m.cur.recs, m.recs.Len())
	m.cur.notifs = clampIndex(m.cur.notifs, m.notifs.Len())
	m.cur.prompts = clampIndex(m.cur.prompts, m.prompts.Len())
}

func (m Model) activeScrollBy(delta int) tea.Cmd {
	switch m.view {
	case ViewSchools:
		return m.schools.ScrollBy(delta)
	case ViewCases:
		return m.cases.ScrollBy(delta)
	case ViewRecommendations:
		return m.recs.ScrollBy(delta)
	case ViewNotifications:
		return m.notifs.ScrollBy(delta)
	case ViewPrompts:
		return m.prompts.ScrollBy(delta)
	}
	return nil
}

func (m Model) activePageUp() tea.Cmd   { return m.activeScrollBy(-m.layout.BodyHeight) }
func (m Model) activePageDown() tea.Cmd { return m.activeScrollBy(m.layout.BodyHeight) }

func (m Model) updateActiveView(rawMsg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case ViewSchools:
		m.schools, cmd = m.schools.Update(rawMsg)
	case ViewCases:
		m.cases, cmd = m.cases.Update(rawMsg)
	case ViewRecommendations:
		m.recs, cmd = m.recs.Update(rawMsg)
	case ViewNotifications:
		m.notifs, cmd = m.notifs.Update(rawMsg)
	case ViewPrompts:
		m.prompts, cmd = m.prompts.Update(rawMsg)
	}
	return m, cmd
}

// -- Layout --------------------------------------------------------------------------

func (m *Model) recomputeLayout() {
	m.layout = ComputeLayout(m.width, m.height)
	m.cur.width = m.layout.BodyWidth
	m.header.SetWidth(m.width)
	m.status.SetWidth(m.width)
	m.schools.SetSize(m.layout.BodyWidth, m.layout.BodyHeight)
	m.cases.SetSize(m.layout.BodyWidth, m.layout.BodyHeight)
	m.recs.SetSize(m.layout.BodyWidth, m.layout.BodyHeight)
	m.notifs.SetSize(m.layout.BodyWidth, m.layout.BodyHeight)
	m.prompts.SetSize(m.layout.BodyWidth, m.layout.BodyHeight)
}

func (m *Model) refreshHints() {
	hints := []status.Hint{
		{Key: "tab", Desc: "view"},
		{Key: "↑↓", Desc: "move"},
		{Key: "enter", Desc: "open"},
	}
	switch m.view {
	case ViewSchools:
		hints = append(hints, status.Hint{Key: "/", Desc: "search"})
		if m.cfg.Admin {
			hints = append(hints, status.Hint{Key: "s", Desc: "scrape"})
		}
	case ViewRecommendations:
		hints = append(hints, status.Hint{Key: "g", Desc: "generate"})
	case ViewNotifications:
		hints = append(hints, status.Hint{Key: "m", Desc: "mark read"})
	case ViewPrompts:
		hints = append(hints, status.Hint{Key: "a", Desc: "approve"}, status.Hint{Key: "x", Desc: "reject"})
	}
	hints = append(hints, status.Hint{Key: "q", Desc: "quit"})
	m.status.SetHints(hints)
	m.updatePosition()
}

func (m *Model) updatePosition() {
	switch m.view {
	case ViewSchools:
		m.status.SetPosition(m.cur.schools+1, m.schools.Len())
	case ViewCases:
		m.status.SetPosition(m.cases.RowCount(), m.cases.Len())
	case ViewRecommendations:
		m.status.SetPosition(m.cur.recs+1, m.recs.Len())
	case ViewNotifications:
		m.status.SetPosition(m.cur.notifs+1, m.notifs.Len())
	case ViewPrompts:
		m.status.SetPosition(m.cur.prompts+1, m.prompts.Len())
	}
}

// -- Commands ----------------------------------------------------------------------

func (m Model) checkHealth() tea.Cmd {
	c := m.client
	return func() tea.Msg {
		health, err := c.Health()
		if err != nil {
			return msg.HealthResult{Err: err}
		}
		return msg.HealthResult{Status: health.Status, Version: health.Version}
	}
}

func (m Model) fetchSchools(query string, page int) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		result, err := c.ListSchools(query, page)
		if err != nil {
			return msg.SchoolPageResult{Query: query, Page: page, Err: err}
		}
		schools := make([]msg.School, len(result.Schools))
		for i, s := range result.Schools {
			schools[i] = msg.School{
				ID: s.ID, Name: s.Name, Country: s.Country, City: s.City,
				Ranking: s.Ranking, TuitionUSD: s.TuitionUSD,
				AcceptanceRate: s.AcceptanceRate, Summary: s.Summary,
			}
		}
		return msg.SchoolPageResult{
			Query: query, Page: result.Page, Schools: schools, HasMore: result.HasMore,
		}
	}
}

func (m Model) fetchCases(page int) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		result, err := c.ListCases(page)
		if err != nil {
			return msg.CasePageResult{Page: page, Err: err}
		}
		cases := make([]msg.AdmissionCase, len(result.Cases))
		for i, ac := range result.Cases {
			cases[i] = msg.AdmissionCase{
				ID: ac.ID, Title: ac.Title, SchoolName: ac.SchoolName,
				Program: ac.Program, Outcome: ac.Outcome, GPA: ac.GPA,
				Year: ac.Year, Highlights: ac.Highlights,
			}
		}
		return msg.CasePageResult{Page: result.Page, Cases: cases, HasMore: result.HasMore}
	}
}

func (m Model) fetchRecommendations() tea.Cmd {
	c := m.client
	return func() tea.Msg {
		result, err := c.GetRecommendations()
		if err != nil {
			return msg.RecommendationsResult{Err: err}
		}
		recs := make([]msg.Recommendation, len(result.Recommendations))
		for i, r := range result.Recommendations {
			recs[i] = msg.Recommendation{
				SchoolID: r.SchoolID, SchoolName: r.SchoolName,
				Tier: r.Tier, Score: r.FitScore,
				Rationale: strings.Join(r.Reasons, "; "),
			}
		}
		return msg.RecommendationsResult{Recommendations: recs, GeneratedAt: result.GeneratedAt}
	}
}

func (m Model) fetchNotifications() tea.Cmd {
	c := m.client
	return func() tea.Msg {
		return FetchNotifications(c)
	}
}

// FetchNotifications is shared with the background poller in main.
func FetchNotifications(c *client.Client) tea.Msg {
	list, err := c.ListNotifications()
	if err != nil {
		return msg.NotificationsResult{Err: err}
	}
	out := make([]msg.Notification, len(list))
	for i, n := range list {
		out[i] = msg.Notification{
			ID: n.ID, Kind: n.Kind, Title: n.Title, Body: n.Body,
			Read: n.Read, CreatedAt: n.CreatedAt,
		}
	}
	return msg.NotificationsResult{Notifications: out}
}

func (m Model) fetchPoints() tea.Cmd {
	c := m.client
	return func() tea.Msg {
		p, err := c.GetPoints()
		if err != nil {
			return msg.PointsResult{Err: err}
		}
		return msg.PointsResult{Balance: p.Balance, EarnedThis: p.Earned}
	}
}

func (m Model) fetchPrompts() tea.Cmd {
	c := m.client
	return func() tea.Msg {
		list, err := c.ListPendingPrompts()
		if err != nil {
			return msg.PromptsResult{Err: err}
		}
		out := make([]msg.EssayPrompt, len(list))
		for i, p := range list {
			out[i] = msg.EssayPrompt{
				ID: p.ID, SchoolName: p.SchoolName, CycleYear: p.CycleYear,
				PromptText: p.PromptText, WordLimit: p.WordLimit,
				SourceURL: p.SourceURL, Status: p.Status, Diff: p.Diff,
			}
		}
		return msg.PromptsResult{Prompts: out}
	}
}

func (m Model) markRead(id string) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		return msg.NotificationRead{ID: id, Err: c.MarkNotificationRead(id)}
	}
}

func (m Model) triggerScrape(schoolID string) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		job, err := c.TriggerScrape(schoolID)
		if err != nil {
			return msg.ScrapeTriggered{SchoolID: schoolID, Err: err}
		}
		return msg.ScrapeTriggered{JobID: job.JobID, SchoolID: schoolID}
	}
}

func (m Model) verifyPrompt(id string, approve bool) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		return msg.PromptVerified{ID: id, Approved: approve, Err: c.VerifyPrompt(id, approve, "")}
	}
}

func (m Model) toastTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return toastTick{} })
}

func (m Model) clearStatusCmd() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return msg.ClearStatus{} })
}

// -- View --------------------------------------------------------------------------

func (m Model) View() tea.View {
	v := tea.NewView(m.renderView())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

func (m Model) renderView() string {
	if m.state == StateConnecting {
		return m.renderConnecting()
	}

	var sections []string
	sections = append(sections, m.header.HeaderView())
	sections = append(sections, m.renderTabs())

	switch m.state {
	case StateDetail:
		sections = append(sections, m.detail)
	case StateSearch:
		sections = append(sections, m.search.View())
	default:
		sections = append(sections, m.renderBody())
	}

	sections = append(sections, m.statusView())

	if m.toasts.HasToasts() {
		sections = append(sections, m.toasts.View(m.width))
	}
	return strings.Join(sections, "\n")
}

func (m Model) renderBody() string {
	switch m.view {
	case ViewSchools:
		return m.schools.View()
	case ViewCases:
		return m.cases.View()
	case ViewRecommendations:
		if m.recFlow.Current() == RecLoading {
			return "\n  " + m.spinner.View()
		}
		return m.recs.View()
	case ViewNotifications:
		return m.notifs.View()
	case ViewPrompts:
		return m.prompts.View()
	}
	return ""
}

func (m Model) renderTabs() string {
	views := []View{ViewSchools, ViewCases, ViewRecommendations, ViewNotifications}
	if m.cfg.Admin {
		views = append(views, ViewPrompts)
	}
	var tabs []string
	for _, v := range views {
		if v == m.view {
			tabs = append(tabs, style.TabActive.Render(v.Title()))
		} else {
			tabs = append(tabs, style.TabInactive.Render(v.Title()))
		}
	}
	return " " + strings.Join(tabs, style.HeaderSeparator.Render("  ·  "))
}

func (m Model) statusView() string {
	// Position tracks the cursor, which may have moved since the last layout.
	s := m.status
	switch m.view {
	case ViewSchools:
		s.SetPosition(m.cur.schools+1, m.schools.Len())
	case ViewCases:
		s.SetPosition(m.cases.RowCount(), m.cases.Len())
	case ViewRecommendations:
		s.SetPosition(m.cur.recs+1, m.recs.Len())
	case ViewNotifications:
		s.SetPosition(m.cur.notifs+1, m.notifs.Len())
	case ViewPrompts:
		s.SetPosition(m.cur.prompts+1, m.prompts.Len())
	}
	return s.View()
}

func (m Model) renderConnecting() string {
	brand := style.Wordmark("Studyport")
	line := m.spinner.View()
	hint := style.Hint.Render(fmt.Sprintf("connecting to %s — r to retry, q to quit", m.cfg.BaseURL))
	return "\n\n  " + brand + "\n\n  " + line + "\n\n  " + hint
}

// -- Helpers -----------------------------------------------------------------------

func selected[T any](items []T, index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(items) {
		return zero, false
	}
	return items[index], true
}

func clampIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func countUnread(ns []msg.Notification) int {
	count := 0
	for _, n := range ns {
		if !n.Read {
			count++
		}
	}
	return count
}

// Package slides holds the content of the SQL Server Monitoring Solution deck.
package slides

import (
	"fmt"

	"sqlmondeck/deck"
)

// DeckTitle is the title of the deck and of its first slide.
const DeckTitle = "SQL Server Monitoring Solution"

// Count is the number of slides in the deck.
const Count = 10

var (
	in     = deck.In
	inches = deck.Inches
)

// Colors used outside the palette.
var (
	paleBlue     = deck.RGB(0xBB, 0xDE, 0xFB)
	skyBlue      = deck.RGB(0x90, 0xCA, 0xF9)
	softBlue     = deck.RGB(0x64, 0xB5, 0xF6)
	zoneBlue     = deck.RGB(0xE3, 0xF2, 0xFD)
	royalBlue    = deck.RGB(0x15, 0x65, 0xC0)
	zoneOrange   = deck.RGB(0xFF, 0xF3, 0xE0)
	burntOrange  = deck.RGB(0xE6, 0x51, 0x00)
	amber        = deck.RGB(0xFF, 0xB7, 0x4D)
	paleYellow   = deck.RGB(0xFF, 0xF9, 0xC4)
	zoneGreen    = deck.RGB(0xE8, 0xF5, 0xE9)
	forestGreen  = deck.RGB(0x2E, 0x7D, 0x32)
	goldenYellow = deck.RGB(0xF9, 0xA8, 0x25)
	leafGreen    = deck.RGB(0x43, 0xA0, 0x47)
	deepGreen    = deck.RGB(0x1B, 0x5E, 0x20)
	purple       = deck.RGB(0x6A, 0x1B, 0x9A)
)

// SQLServerMonitoring builds the complete ten-slide deck.
func SQLServerMonitoring() *deck.Deck {
	d := deck.New()
	d.Title = DeckTitle
	d.Creator = "Azure Monitor Assets"

	titleSlide(d)
	agendaSlide(d)
	challengeSlide(d)
	overviewSlide(d)
	architectureSlide(d)
	pipelineSlide(d)
	workbookSlide(d)
	securitySlide(d)
	deploymentSlide(d)
	nextStepsSlide(d)
	return d
}

// contentSlide starts a white slide with the dark blue title band.
func contentSlide(d *deck.Deck, title string) *deck.Slide {
	s := d.AddSlide()
	s.SetBackground(deck.White)
	s.AddRectangle(in(0, 0, 13.333, 1.2), deck.DarkBlue)
	s.AddTextBox(in(0.8, 0.25, 11, 0.8), title, deck.WithSize(36), deck.WithBold(), deck.WithColor(deck.White))
	return s
}

// lead adds the one-line lead text under the title band.
func lead(s *deck.Slide, text string, opts ...deck.TextOption) {
	s.AddTextBox(in(0.8, 1.6, 12, 0.5), text, append([]deck.TextOption{deck.WithSize(20)}, opts...)...)
}

func titleSlide(d *deck.Deck) {
	s := d.AddSlide()
	s.AddRectangle(in(0, 0, 13.333, 7.5), deck.DarkBlue)
	s.AddRectangle(in(0, 5.5, 13.333, 0.08), deck.AzureBlue)

	center := deck.WithAlign(deck.AlignCenter)
	s.AddTextBox(in(1, 1.5, 11, 1.5), DeckTitle,
		deck.WithSize(44), deck.WithBold(), deck.WithColor(deck.White), center)
	s.AddTextBox(in(1, 3.0, 11, 0.8), "Centralized Monitoring with Azure Automation & Logs Ingestion API",
		deck.WithSize(24), deck.WithColor(paleBlue), center)
	s.AddTextBox(in(1, 4.5, 11, 0.6), "Azure Monitor  |  Log Analytics  |  Custom Workbook",
		deck.WithSize(18), deck.WithColor(skyBlue), center)
	s.AddTextBox(in(1, 6.0, 11, 0.5), "Microsoft Azure Monitor Assets",
		deck.WithSize(16), deck.WithColor(softBlue), center)
}

func agendaSlide(d *deck.Deck) {
	s := contentSlide(d, "Agenda")
	items := []string{
		"1.  Challenge & Business Problem",
		"2.  Solution Overview",
		"3.  Architecture Deep Dive",
		"4.  Data Pipeline: Logs Ingestion API",
		"5.  Workbook Dashboard (4 Tabs)",
		"6.  Security & Authentication",
		"7.  Deployment Options",
		"8.  Demo & Next Steps",
	}
	s.AddBulletList(in(1.5, 1.8, 10, 5), items, deck.WithSize(22))
}

type card struct {
	title string
	desc  string
	color deck.Color
}

func challengeSlide(d *deck.Deck) {
	s := contentSlide(d, "The Challenge")
	s.AddTextBox(in(0.8, 1.6, 12, 0.6), "Monitoring SQL Server instances across hybrid environments is complex:",
		deck.WithSize(20))

	challenges := []card{
		{"Fragmented Visibility", "SQL Servers spread across on-prem,\nIaaS VMs, and Arc-enabled servers\nwith no unified view", deck.LightBlue},
		{"Backup Compliance", "No centralized way to verify backup\nSLA compliance across all databases\nand instances", deck.LightBlue},
		{"Manual Processes", "Teams rely on manual scripts or\nthird-party tools with complex\nlicensing and overhead", deck.LightBlue},
		{"Reactive Alerting", "Issues discovered after impact;\nno proactive monitoring of\nuptime and backup status", deck.LightBlue},
	}
	for i, c := range challenges {
		x := inches(0.8 + float64(i)*3.1)
		s.AddLabeledBox(deck.At(x, inches(2.6), inches(2.8), inches(3.5)), c.color, "")
		s.AddTextBox(deck.At(x+inches(0.2), inches(2.8), inches(2.4), inches(0.6)), c.title,
			deck.WithSize(18), deck.WithBold(), deck.WithColor(deck.DarkBlue), deck.WithAlign(deck.AlignCenter))
		s.AddTextBox(deck.At(x+inches(0.2), inches(3.5), inches(2.4), inches(2.2)), c.desc,
			deck.WithSize(14), deck.WithAlign(deck.AlignCenter))
	}
}

func overviewSlide(d *deck.Deck) {
	s := contentSlide(d, "Solution Overview")
	lead(s, "A fully native Azure Monitor solution — no additional agents required on SQL Servers",
		deck.WithBold(), deck.WithColor(deck.AzureBlue))

	benefits := []card{
		{"Agentless", "No software installed\non SQL Servers.\nOnly the Hybrid Worker\nneeds an extension.", deck.Green},
		{"Custom Schema", "Clean 20-column table\nin Log Analytics.\nNo JSON parsing needed\nin KQL queries.", deck.AzureBlue},
		{"Secure by Design", "Managed Identity auth.\nKey Vault for credentials.\nNo passwords in code.", deck.DarkBlue},
		{"Pre-built Dashboard", "4-tab Azure Monitor\nWorkbook: Summary,\nInstances, Databases,\nBackups.", deck.Orange},
	}
	for i, b := range benefits {
		x := inches(0.8 + float64(i)*3.1)
		s.AddLabeledBox(deck.At(x, inches(2.5), inches(2.8), inches(0.6)), b.color, b.title, deck.WithSize(16))
		s.AddTextBox(deck.At(x+inches(0.2), inches(3.3), inches(2.4), inches(2.5)), b.desc,
			deck.WithSize(14), deck.WithAlign(deck.AlignCenter))
	}

	s.AddTextBox(in(0.8, 5.5, 12, 0.4), "Metrics Collected:",
		deck.WithSize(16), deck.WithBold(), deck.WithColor(deck.DarkBlue))
	s.AddTextBox(in(0.8, 5.9, 12, 1),
		"Instance Uptime  •  Database State & Recovery Model  •  Full/Log Backup Status  •  Backup SLA Compliance  •  Connection Errors",
		deck.WithSize(15), deck.WithColor(deck.MediumGray))
}

// zone is a tinted column of the architecture diagram with its caption.
type zone struct {
	frame   deck.Rect
	tint    deck.Color
	label   deck.Rect
	caption string
	accent  deck.Color
}

func (z zone) draw(s *deck.Slide) {
	s.AddRectangle(z.frame, z.tint)
	s.AddTextBox(z.label, z.caption, deck.WithSize(14), deck.WithBold(), deck.WithColor(z.accent))
}

func architectureSlide(d *deck.Deck) {
	s := contentSlide(d, "Architecture")
	white := deck.WithColor(deck.White)
	dark := deck.WithColor(deck.DarkGray)

	zone{in(0.5, 1.5, 3, 5.2), zoneBlue, in(0.6, 1.55, 2.8, 0.4), "On-Premises / IaaS", royalBlue}.draw(s)
	for i, name := range []string{"SQL Server 1", "SQL Server 2", "SQL Server N"} {
		y := inches(2.2 + float64(i)*1.4)
		s.AddLabeledBox(deck.At(inches(0.8), y, inches(2.4), inches(0.8)), royalBlue, name, deck.WithSize(13), white)
	}

	zone{in(4, 1.5, 3, 5.2), zoneOrange, in(4.1, 1.55, 2.8, 0.4), "Hybrid Worker (Arc VM)", burntOrange}.draw(s)
	s.AddLabeledBox(in(4.3, 2.2, 2.4, 0.7), burntOrange, "Arc-enabled Server\n+ Managed Identity", deck.WithSize(11), white)
	s.AddLabeledBox(in(4.3, 3.2, 2.4, 0.7), amber, "Hybrid Worker\nExtension (PS 7.2)", deck.WithSize(11), dark)
	s.AddLabeledBox(in(4.3, 4.2, 2.4, 1.0), paleYellow, "PowerShell Runbook\nGet-SQLServerInfo-\nLogsIngestionApi.ps1", deck.WithSize(10), dark)

	zone{in(7.5, 1.5, 5.3, 5.2), zoneGreen, in(7.6, 1.55, 5.1, 0.4), "Azure Cloud", forestGreen}.draw(s)
	s.AddLabeledBox(in(7.8, 2.2, 2.2, 0.7), forestGreen, "Automation\nAccount", deck.WithSize(12), white)
	s.AddLabeledBox(in(10.3, 2.2, 2.2, 0.7), goldenYellow, "Key Vault\n(optional)", deck.WithSize(12), white)
	s.AddLabeledBox(in(7.8, 3.3, 2.2, 0.6), leafGreen, "DCE (Endpoint)", deck.WithSize(12), white)
	s.AddLabeledBox(in(10.3, 3.3, 2.2, 0.6), leafGreen, "DCR (Rule)", deck.WithSize(12), white)
	s.AddLabeledBox(in(7.8, 4.4, 2.2, 0.9), deepGreen, "Log Analytics\nSQLServerMonitoring_CL", deck.WithSize(11), white)
	s.AddLabeledBox(in(10.3, 4.4, 2.2, 0.9), purple, "Azure Monitor\nWorkbook (4 tabs)", deck.WithSize(11), white)

	// Flow arrows are drawn as text.
	s.AddTextBox(in(3.2, 2.8, 1.2, 0.5), "TCP 1433 →",
		deck.WithSize(11), deck.WithBold(), deck.WithColor(royalBlue), deck.WithAlign(deck.AlignCenter))
	s.AddTextBox(in(6.5, 3.4, 1.2, 0.5), "HTTPS →",
		deck.WithSize(11), deck.WithBold(), deck.WithColor(forestGreen), deck.WithAlign(deck.AlignCenter))

	s.AddTextBox(in(0.8, 6.0, 12, 0.4),
		"Data Flow:  ① Schedule triggers runbook  →  ② Hybrid Worker queries SQL Servers  →  ③ POST to Logs Ingestion API  →  ④ DCR routes to custom table  →  ⑤ Workbook visualizes",
		deck.WithSize(13), deck.WithColor(deck.MediumGray))
}

func pipelineSlide(d *deck.Deck) {
	s := contentSlide(d, "Data Pipeline — Logs Ingestion API")
	lead(s, "Direct ingestion into Log Analytics using Azure Monitor's native REST API", deck.WithColor(deck.AzureBlue))

	steps := []card{
		{"1. Collect", "Runbook queries SQL\nServers using T-SQL\n(sys.dm_os_sys_info,\nsys.databases,\nmsdb.dbo.backupset)", deck.AzureBlue},
		{"2. Transform", "PowerShell converts\nresults to JSON records\nwith 20 typed columns\n(one record per database)", leafGreen},
		{"3. Authenticate", "Managed Identity\nobtains OAuth2 token\nfor monitor.azure.com\n(no stored credentials)", burntOrange},
		{"4. Ingest", "HTTPS POST to DCE\nLogs Ingestion API\nwith JSON payload\n(batched per collection)", purple},
		{"5. Route", "DCR validates schema,\napplies transformKql,\nroutes to destination\ntable in Log Analytics", forestGreen},
	}
	for i, st := range steps {
		x := inches(0.5 + float64(i)*2.5)
		s.AddLabeledBox(deck.At(x, inches(2.5), inches(2.2), inches(0.6)), st.color, st.title, deck.WithSize(14))
		s.AddTextBox(deck.At(x+inches(0.1), inches(3.3), inches(2.0), inches(2.5)), st.desc,
			deck.WithSize(13), deck.WithAlign(deck.AlignCenter))
	}

	s.AddTextBox(in(0.8, 5.5, 12, 0.4), "Custom Table: SQLServerMonitoring_CL (20 columns)",
		deck.WithSize(16), deck.WithBold(), deck.WithColor(deck.DarkBlue))
	schema := "TimeGenerated  •  CollectorName  •  SqlInstance  •  ServerName  •  SqlVersion  •  InstanceStartTime\n" +
		"InstanceUptimeSeconds/Minutes/Hours/Days  •  DatabaseName  •  DatabaseState  •  RecoveryModel\n" +
		"DatabaseCreateDate  •  LastFullBackupTime  •  HoursSinceFullBackup  •  LastFullBackupStatus\n" +
		"FullBackupAlertStatus  •  LastLogBackupTime  •  MinutesSinceLogBackup"
	s.AddTextBox(in(0.8, 5.9, 12, 1.5), schema, deck.WithSize(12), deck.WithColor(deck.MediumGray))
}

type workbookTab struct {
	name     string
	features []string
	color    deck.Color
}

func workbookSlide(d *deck.Deck) {
	s := contentSlide(d, "Workbook Dashboard — 4 Tabs")

	tabs := []workbookTab{
		{"📊 Summary", []string{
			"4 KPI tiles: Instances, Databases,\nBackup Alerts, Compliance %",
			"Pie charts: Backup status distribution\nand Recovery model breakdown",
			"Instance uptime table with\nheat-map coloring",
		}, deck.AzureBlue},
		{"🖥️ Instances", []string{
			"Grid with online/offline status,\nSQL version, database count",
			"Uptime display in days/hours\nwith last-seen timestamp",
			"Line chart: uptime trend\nover time per instance",
		}, leafGreen},
		{"🗄️ Databases", []string{
			"Detailed grid with state,\nrecovery model, backup status",
			"Color-coded: ONLINE=green,\nFULL=blue, SIMPLE=orange",
			"Bar chart: database count\nper SQL instance",
		}, burntOrange},
		{"💾 Backups", []string{
			"Compliance table per instance\n(compliant, warning, critical)",
			"Alert grid: databases needing\nattention (sorted by severity)",
			"Log backup monitoring for\nFULL recovery model DBs",
		}, purple},
	}
	for i, tab := range tabs {
		x := inches(0.5 + float64(i)*3.15)
		s.AddLabeledBox(deck.At(x, inches(1.6), inches(2.9), inches(0.6)), tab.color, tab.name, deck.WithSize(16))
		for j, feature := range tab.features {
			s.AddTextBox(deck.At(x+inches(0.15), inches(2.4+float64(j)*1.4), inches(2.6), inches(1.3)), feature,
				deck.WithSize(12))
		}
	}

	s.AddTextBox(in(0.8, 6.3, 12, 0.3),
		"Interactive Parameters:  Subscription  •  Workspace  •  Time Range  •  SQL Instance (multi-select)  •  Database (multi-select)",
		deck.WithSize(14), deck.WithBold(), deck.WithColor(deck.DarkBlue))
}

// authOption is one of the SQL Server authentication panels.
type authOption struct {
	panel   deck.Rect
	head    deck.Rect
	text    deck.Rect
	tint    deck.Color
	heading string
	accent  deck.Color
	body    string
}

func (o authOption) draw(s *deck.Slide) {
	s.AddLabeledBox(o.panel, o.tint, "")
	s.AddTextBox(o.head, o.heading, deck.WithSize(16), deck.WithBold(), deck.WithColor(o.accent))
	s.AddTextBox(o.text, o.body, deck.WithSize(13))
}

func securitySlide(d *deck.Deck) {
	s := contentSlide(d, "Security & Authentication")

	s.AddTextBox(in(0.8, 1.6, 5.5, 0.5), "Azure Authentication (Managed Identity)",
		deck.WithSize(20), deck.WithBold(), deck.WithColor(deck.AzureBlue))
	azureAuth := []string{
		"• System-assigned MI on Automation Account",
		"• Arc VM MI for IMDS token (Hybrid Worker)",
		"• OAuth2 tokens for Azure Monitor & Key Vault",
		"• RBAC: Monitoring Metrics Publisher on DCR",
		"• RBAC: Key Vault Secrets User (SQL Auth only)",
		"• No credentials stored in runbook code",
	}
	s.AddBulletList(in(0.8, 2.2, 5.5, 3), azureAuth, deck.WithSize(15))

	s.AddTextBox(in(7, 1.6, 5.5, 0.5), "SQL Server Authentication Options",
		deck.WithSize(20), deck.WithBold(), deck.WithColor(deck.AzureBlue))

	authOption{
		panel:   in(7, 2.3, 5.5, 1.8),
		head:    in(7.2, 2.4, 5.1, 0.4),
		text:    in(7.2, 2.8, 5.1, 1.2),
		tint:    deck.LightBlue,
		heading: "Option A: Windows Authentication",
		accent:  deck.DarkBlue,
		body: "Best for domain-joined environments.\nHybrid Worker service account authenticates\nvia Kerberos/NTLM. No password management.\n" +
			"Requirements: Domain trust, SQL login for machine account.",
	}.draw(s)
	authOption{
		panel:   in(7, 4.3, 5.5, 1.8),
		head:    in(7.2, 4.4, 5.1, 0.4),
		text:    in(7.2, 4.8, 5.1, 1.2),
		tint:    zoneOrange,
		heading: "Option B: SQL Authentication + Key Vault",
		accent:  burntOrange,
		body: "Best for non-domain or mixed environments.\nCredentials stored securely in Azure Key Vault.\nManaged Identity retrieves secrets at runtime.\n" +
			"Requirements: Key Vault with SQL login secrets.",
	}.draw(s)

	s.AddTextBox(in(0.8, 5.5, 12, 0.4), "Required SQL Server Permissions:",
		deck.WithSize(16), deck.WithBold(), deck.WithColor(deck.DarkBlue))
	s.AddTextBox(in(0.8, 5.9, 12, 0.8),
		"VIEW SERVER STATE  •  VIEW ANY DATABASE  •  db_datareader on msdb (for backup history)",
		deck.WithSize(14), deck.WithColor(deck.MediumGray))
}

type armTemplate struct {
	title    string
	filename string
	items    []string
	color    deck.Color
}

func deploymentSlide(d *deck.Deck) {
	s := contentSlide(d, "Deployment — Easy as 1-2-3")
	lead(s, "Three ARM templates — deployable from the Azure Portal (no CLI required)", deck.WithColor(deck.AzureBlue))

	templates := []armTemplate{
		{"Step 1\nInfrastructure", "arm-template-infrastructure.json", []string{
			"Automation Account (System MI)",
			"Log Analytics Workspace",
			"Custom Table (20 columns)",
			"Key Vault (optional)",
		}, deck.AzureBlue},
		{"Step 2\nData Collection", "arm-template-data-collection.json", []string{
			"Data Collection Endpoint (DCE)",
			"Data Collection Rule (DCR)",
			"Stream declarations",
			"Transform KQL config",
		}, leafGreen},
		{"Step 3\nWorkbook", "arm-template-workbook.json", []string{
			"Azure Monitor Workbook",
			"4 interactive tabs",
			"Pre-configured KQL queries",
			"Color-coded visualizations",
		}, purple},
	}
	for i, t := range templates {
		x := inches(0.8 + float64(i)*4)
		s.AddLabeledBox(deck.At(x, inches(2.3), inches(3.5), inches(0.9)), t.color, t.title, deck.WithSize(15))
		s.AddTextBox(deck.At(x+inches(0.1), inches(3.3), inches(3.3), inches(0.3)), t.filename,
			deck.WithSize(11), deck.WithColor(deck.MediumGray), deck.WithAlign(deck.AlignCenter))
		for j, item := range t.items {
			s.AddTextBox(deck.At(x+inches(0.2), inches(3.7+float64(j)*0.4), inches(3.1), inches(0.4)),
				fmt.Sprintf("✓  %s", item), deck.WithSize(13))
		}
	}

	s.AddTextBox(in(0.8, 5.5, 12, 0.4), "Manual Steps (Portal-guided):",
		deck.WithSize(16), deck.WithBold(), deck.WithColor(deck.DarkBlue))
	manual := []string{
		"→  Configure RBAC (assign Monitoring Metrics Publisher role to Automation Account MI on DCR)",
		"→  Set up Hybrid Worker Group (add Arc-enabled server to Automation Account)",
		"→  Import & publish the runbook script (paste into Automation Account runbook editor)",
		"→  Create schedule and link to runbook with parameters (SQL instances, DCE endpoint, DCR ID)",
	}
	s.AddBulletList(in(0.8, 5.9, 12, 1.5), manual, deck.WithSize(13))
}

func nextStepsSlide(d *deck.Deck) {
	s := d.AddSlide()
	s.AddRectangle(in(0, 0, 13.333, 7.5), deck.DarkBlue)
	s.AddRectangle(in(0, 5.5, 13.333, 0.08), deck.AzureBlue)

	center := deck.WithAlign(deck.AlignCenter)
	s.AddTextBox(in(1, 0.8, 11, 0.8), "Next Steps",
		deck.WithSize(40), deck.WithBold(), deck.WithColor(deck.White), center)

	steps := []string{
		"1.  Review the Lab Deployment Guide (LabGuide-SQLServerMonitoring.md)",
		"2.  Deploy ARM templates to your subscription (Portal or script)",
		"3.  Configure Hybrid Worker on an Arc-enabled server or Azure VM",
		"4.  Import the runbook and create a monitoring schedule",
		"5.  Validate data in the workbook dashboard",
		"6.  Set up alert rules for backup SLA violations",
		"7.  Scale: add more SQL instances to the collection parameters",
	}
	s.AddBulletList(in(2, 2.0, 9, 3.5), steps, deck.WithSize(20), deck.WithColor(paleBlue))

	s.AddTextBox(in(1, 5.8, 11, 0.6),
		"All materials provided:  Presentation  •  Architecture Diagram  •  Lab Guide  •  ARM Templates  •  Deployment Script  •  Runbook",
		deck.WithSize(16), deck.WithColor(skyBlue), center)
	s.AddTextBox(in(1, 6.5, 11, 0.5), "Thank You",
		deck.WithSize(28), deck.WithBold(), deck.WithColor(deck.White), center)
}

package helpdesk

import "fmt"

// deviceStatus is the fixed monitoring table for the demo environment.
var deviceStatus = map[string]string{
	"printer01":     "🟢 Online and functioning normally",
	"printer02":     "🟡 Online but low on toner",
	"router23":      "🔴 Offline - requires restart",
	"router24":      "🟢 Online with good signal strength",
	"server07":      "🟡 Online but high CPU usage (85%)",
	"server08":      "🟢 Online with normal performance",
	"workstation15": "🔴 Offline - last seen 2 hours ago",
	"workstation16": "🟢 Online and updated",
}

// CheckSystemStatus returns the monitoring status for a device ID.
func CheckSystemStatus(deviceID string) string {
	if status, ok := deviceStatus[deviceID]; ok {
		return status
	}
	return fmt.Sprintf("❓ Device '%s' not found in monitoring system", deviceID)
}

// AvailableDevices lists the devices the status check knows about.
func AvailableDevices() string {
	return "**Available Devices for Status Check:**\n" +
		"🖨️ **Printers:** printer01, printer02\n" +
		"🌐 **Routers:** router23, router24\n" +
		"🖥️ **Servers:** server07, server08\n" +
		"💻 **Workstations:** workstation15, workstation16"
}

// SeedDocuments returns the knowledge-base articles the helpdesk flow
// retrieves against. Ingested at seed time.
func SeedDocuments() []string {
	return []string{
		"How to reset password: Visit company portal, click 'Forgot Password', enter email, check inbox for reset link.",
		"Computer running slow: First restart computer, close unnecessary applications, run antivirus scan, check disk space.",
		"VPN connection issues: Download VPN client from IT portal, install, enter credentials, contact IT if still failing.",
		"Printer not working: Check power cable, ensure printer is online, check ink/toner levels, restart print spooler service.",
		"Email not syncing: Check internet connection, verify email settings, restart email client, contact IT for Exchange issues.",
		"Software installation: Use Software Center for approved apps, request new software through IT ticket system.",
		"WiFi connectivity problems: Forget and reconnect to network, restart network adapter, check with IT for network issues.",
		"Blue screen errors: Note error code, restart in safe mode, run memory diagnostic, contact IT with error details.",
	}
}

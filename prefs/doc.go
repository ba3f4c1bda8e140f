// Package prefs holds user preferences consumed by the model, most notably
// the minimum gap enforced between meetings. Preferences load from and save
// to a YAML file with first-run default creation and 0600 permissions;
// partially filled files are normalized with sensible defaults.
package prefs

/*
Package clickpack turns the description of a web site (its address, display
name, theme color, icon source, and URL-matching patterns) into an
installable Ubuntu Touch web-app shortcut in click package format.

A click package is an ar container with exactly four members, in this order:

  - “debian-binary” with the fixed contents “2.0\n”,
  - “control.tar.gz” holding the control and manifest files,
  - “data.tar.gz” holding the apparmor profile, desktop entry, preinst
    guard, and the app icon,
  - “_click-binary” with the fixed contents “0.4\n”.

Both tarballs unpack directly at their archive root, so all their entries
are named “./…” without any extra nesting level.

All that clickpack needs is a [PackageRequest] with the web site's details
and a staging directory it may clear and repopulate on every build. The
finished package is left as “shortcut.click” inside that directory. Builds
are strictly sequential; callers wanting parallel builds use one staging
root per build.
*/
package clickpack

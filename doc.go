/*
Package vcui is a retained-mode UI toolkit built from view controllers, with a scrollable viewport, a tab bar, and a few leaf widgets.

The examples/ directory has small programs, cmd/vcdemo shows everything. Examples are the recommended starting point.

Instructions and information

Start with NewEnv to create an Env: the event bus, the backend that makes surfaces and fonts, and the settings. Backends are in the sub packages devdraw (plan9port windows) and term (terminals). Raster is an in-memory backend, for tests and off-screen drawing.

The user interface is a tree of view controllers. Each embeds Controller, owns a surface, and renders itself and its children into it. ScrollController shows part of a larger content surface, TabBarController switches between child controllers, MenuController is a scrolling side panel. Leaf widgets (Button, StaticText, EditableText, Image) draw onto the surface of the controller that holds them.

Input goes through the Bus. Controllers and widgets subscribe callbacks per event category, and the bus calls them once per frame in a fixed order: early update, the frame's events, an aggregate mouse press while buttons are held, update. Subscriptions are owned by the subscriber: a Subscriptions group collects the tokens, and closing the group unsubscribes them all. Env.Activate and Env.Deactivate do this for a controller, its adopted widgets and, for containers, its children. A controller is only subscribed while it is active, e.g. while it is the selected tab.

Run is the frame loop: it paces at Config.LoopsPerSecond, dispatches events, updates and renders the root controller, and presents it. All callbacks and controller methods are called from the loop. To change the UI from another goroutine, send a function on Env.Call.

Scrolling

ScrollController scrolls with the mouse wheel, buttons 4 and 5, along its direction. A scrollbar is shown per axis that has more content than fits, depending on the visibility setting: never, always, or on activity, i.e. while hovered or dragged and for a timeout after wheel use. Drag a thumb with button 1 to scroll, the content follows the pointer.

Settings are read from TOML, see DefaultConfig for the defaults.
*/
package vcui

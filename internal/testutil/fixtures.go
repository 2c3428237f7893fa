package testutil

// CollectionXML is a trimmed collection feed with four owned games. Expected
// normalized values:
//
//	Catan            id 13     rating 8    avg 7.5  geek 7.0  delta 0.5   plays 5
//	Tzolk'in         id 126163 rating N/A  avg 7.9  geek 7.7  delta -     plays 0
//	Carcassonne      id 822    rating 7    avg 7.4  geek 7.3  delta 0.4   plays 12 (7+5)
//	Dungeons & ...   id 59946  rating 6.5  avg 6.9  geek 6.6  delta 0.4   plays 2
const CollectionXML = `<?xml version="1.0" encoding="utf-8" standalone="yes"?>
<items totalitems="4" termsofuse="https://boardgamegeek.com/xmlapi/termsofuse" pubdate="Mon, 02 Sep 2024 10:00:00 +0000">
	<item objecttype="thing" objectid="13" subtype="boardgame" collid="1001">
		<name sortindex="1">Catan</name>
		<yearpublished>1995</yearpublished>
		<image>https://cf.geekdo-images.com/catan.jpg</image>
		<thumbnail>https://cf.geekdo-images.com/catan_t.jpg</thumbnail>
		<stats minplayers="3" maxplayers="4" minplaytime="60" maxplaytime="120" playingtime="120" numowned="200000">
			<rating value="8">
				<usersrated value="110000"/>
				<average value="7.5"/>
				<bayesaverage value="7.0"/>
				<stddev value="1.48"/>
				<median value="0"/>
			</rating>
		</stats>
		<status own="1" prevowned="0" fortrade="0" want="0" wanttoplay="0" wanttobuy="0" wishlist="0" preordered="0" lastmodified="2024-01-01 10:00:00"/>
		<numplays>5</numplays>
	</item>
	<item objecttype="thing" objectid="126163" subtype="boardgame" collid="1002">
		<name sortindex="1">Tzolk&#039;in: The Mayan Calendar</name>
		<yearpublished>2012</yearpublished>
		<thumbnail>https://cf.geekdo-images.com/tzolkin_t.jpg</thumbnail>
		<stats minplayers="2" maxplayers="4" minplaytime="90" maxplaytime="90" playingtime="90" numowned="30000">
			<rating value="N/A">
				<usersrated value="40000"/>
				<average value="7.9"/>
				<bayesaverage value="7.7"/>
			</rating>
		</stats>
		<numplays>0</numplays>
	</item>
	<item objecttype="thing" objectid="822" subtype="boardgame" collid="1003">
		<name sortindex="1">Carcassonne</name>
		<yearpublished>2000</yearpublished>
		<thumbnail>https://cf.geekdo-images.com/carcassonne_t.jpg</thumbnail>
		<stats minplayers="2" maxplayers="5" minplaytime="30" maxplaytime="45" playingtime="45" numowned="150000">
			<rating value="7">
				<usersrated value="120000"/>
				<average value="7.4"/>
				<bayesaverage value="7.3"/>
			</rating>
		</stats>
		<numplays>7</numplays>
		<numplays>5</numplays>
	</item>
	<item objecttype="thing" objectid="59946" subtype="boardgame" collid="1004">
		<name sortindex="1">Dungeons &amp; Dragons: Castle Ravenloft Board Game</name>
		<yearpublished>2010</yearpublished>
		<thumbnail>https://cf.geekdo-images.com/ravenloft_t.jpg</thumbnail>
		<stats minplayers="1" maxplayers="5" minplaytime="60" maxplaytime="60" playingtime="60" numowned="20000">
			<rating value="6.5">
				<usersrated value="9000"/>
				<average value="6.9"/>
				<bayesaverage value="6.6"/>
			</rating>
		</stats>
		<numplays>2</numplays>
	</item>
</items>`

// CollectionMissingStatsXML has an entry without a stats node.
const CollectionMissingStatsXML = `<items totalitems="2">
	<item objectid="13"><name>Catan</name><stats minplayers="3"><rating value="8"><average value="7.5"/></rating></stats></item>
	<item objectid="14"><name>Broken</name><numplays>1</numplays></item>
</items>`

// CollectionErrorsXML is what the feed returns for an unknown user.
const CollectionErrorsXML = `<?xml version="1.0" encoding="utf-8" standalone="yes"?>
<errors>
	<error>
		<message>Invalid username specified</message>
	</error>
</errors>`

// CollectionQueuedXML is the 202 placeholder body.
const CollectionQueuedXML = `<?xml version="1.0" encoding="utf-8" standalone="yes"?>
<message>
	Your request for this collection has been accepted and will be processed.  Please try again later for access.
</message>`

// ThingDescription is the sanitized form of the description in ThingXML.
const ThingDescription = "In CATAN, players try to be the dominant force on the island of Catan by building settlements, cities, and roads.Players collect resources  wood, grain  and trade.Designer note: great game"

// ThingSummary is the recommendation line for the poll in ThingXML.
const ThingSummary = " Best with: 4 players, also excellent with: 3 players, not recommended with: 2, 1 players"

// ThingXML is a detail feed for Catan. Poll buckets, using one tally per
// result child:
//
//	1   best 0   rec 5   not 300  -> votes 305 score 2.5  w 0.008
//	2   best 2   rec 40  not 250  -> votes 292 score 22   w 0.075
//	3   best 300 rec 200 not 20   -> votes 520 score 400  w 0.769
//	4   best 400 rec 150 not 10   -> votes 560 score 475  w 0.848
//	4+  best 0   rec 1   not 200  -> score 0.5, dropped
const ThingXML = `<?xml version="1.0" encoding="utf-8"?>
<items termsofuse="https://boardgamegeek.com/xmlapi/termsofuse">
	<item type="boardgame" id="13">
		<thumbnail>https://cf.geekdo-images.com/catan_t.jpg</thumbnail>
		<name type="primary" sortindex="1" value="CATAN"/>
		<description>In CATAN, players try to be the dominant force on the island of Catan by building settlements, cities, and roads.&amp;#10;&amp;#10;Players collect resources &amp;mdash; wood, grain &amp;ndash; and trade.&amp;#10;Designer&amp;rsquo;s note: &amp;quot;great&amp;quot; game&amp;hellip;</description>
		<yearpublished value="1995"/>
		<minplayers value="3"/>
		<maxplayers value="4"/>
		<poll name="suggested_numplayers" title="User Suggested Number of Players" totalvotes="2400">
			<results numplayers="1">
				<result value="Best" numvotes="0"/>
				<result value="Recommended" numvotes="5"/>
				<result value="Not Recommended" numvotes="300"/>
			</results>
			<results numplayers="2">
				<result value="Best" numvotes="2"/>
				<result value="Recommended" numvotes="40"/>
				<result value="Not Recommended" numvotes="250"/>
			</results>
			<results numplayers="3">
				<result value="Best" numvotes="300"/>
				<result value="Recommended" numvotes="200"/>
				<result value="Not Recommended" numvotes="20"/>
			</results>
			<results numplayers="4">
				<result value="Best" numvotes="400"/>
				<result value="Recommended" numvotes="150"/>
				<result value="Not Recommended" numvotes="10"/>
			</results>
			<results numplayers="4+">
				<result value="Best" numvotes="0"/>
				<result value="Recommended" numvotes="1"/>
				<result value="Not Recommended" numvotes="200"/>
			</results>
		</poll>
		<poll name="language_dependence" title="Language Dependence" totalvotes="300">
			<results>
				<result level="1" value="No necessary in-game text" numvotes="10"/>
			</results>
		</poll>
	</item>
</items>`

// ThingMissingPollXML lacks the player-count poll.
const ThingMissingPollXML = `<items><item type="boardgame" id="13">
	<description>Plain</description>
	<yearpublished value="1995"/>
</item></items>`
